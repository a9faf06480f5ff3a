package state

import (
	"fmt"
	"testing"

	"InfiniteBoard/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer sizes text as 10 units per rune by fontSize, plus padding.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(text string, fontSize, padding float64) geom.Size {
	return geom.Size{W: float64(len([]rune(text)))*10 + 2*padding, H: fontSize + 2*padding}
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}

func newTestStore() *Store {
	return NewStore(WithIDFunc(seqIDs()), WithMeasurer(fixedMeasurer{}))
}

func TestAppendAssignsIDsInOrder(t *testing.T) {
	s := newTestStore()
	a, ok := s.Append(Shape{Type: TypeSquare, Width: 10, Height: 10})
	require.True(t, ok)
	b, ok := s.Append(Shape{Type: TypeCircle, Width: 5, Height: 5})
	require.True(t, ok)

	assert.Equal(t, "s1", a.ID)
	assert.Equal(t, "s2", b.ID)
	shapes := s.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, "s1", shapes[0].ID)
	assert.Equal(t, "s2", shapes[1].ID)
}

func TestAppendDuplicateID(t *testing.T) {
	s := newTestStore()
	_, ok := s.Append(Shape{ID: "x", Type: TypeSquare, Content: "first"})
	require.True(t, ok)
	got, ok := s.Append(Shape{ID: "x", Type: TypeSquare, Content: "second"})
	assert.False(t, ok)
	assert.Equal(t, "first", got.Content)
	assert.Equal(t, 1, s.Len())
}

func TestAppendNormalizesNegativeSize(t *testing.T) {
	s := newTestStore()
	got, _ := s.Append(Shape{Type: TypeSquare, Width: -3, Height: -4})
	assert.Equal(t, 3.0, got.Width)
	assert.Equal(t, 4.0, got.Height)
}

func TestUUIDDefault(t *testing.T) {
	s := NewStore()
	a, _ := s.Append(Shape{Type: TypeSquare})
	b, _ := s.Append(Shape{Type: TypeSquare})
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestShapesAreCopies(t *testing.T) {
	s := newTestStore()
	a, _ := s.Append(Shape{Type: TypeLine, Points: []float64{0, 0, 10, 10}})
	a.Points[0] = 99
	got, _ := s.Get(a.ID)
	assert.Equal(t, 0.0, got.Points[0])
}

func TestSetField(t *testing.T) {
	s := newTestStore()
	sh, _ := s.Append(Shape{Type: TypeSquare, Width: 50, Height: 50})

	tests := []struct {
		field Field
		value any
		ok    bool
		check func(Shape) bool
	}{
		{FieldBgColor, "red", true, func(x Shape) bool { return x.BgColor == "red" }},
		{FieldBorderColor, "blue", true, func(x Shape) bool { return x.BorderColor == "blue" }},
		{FieldTextColor, "white", true, func(x Shape) bool { return x.TextColor == "white" }},
		{FieldFontSize, 24, true, func(x Shape) bool { return x.FontSize == 24 }},
		{FieldFontSize, float32(32), true, func(x Shape) bool { return x.FontSize == 32 }},
		{FieldBorderSize, 2.5, true, func(x Shape) bool { return x.BorderSize == 2.5 }},
		{FieldBorderRadius, 8, true, func(x Shape) bool { return x.BorderRadius == 8 }},
		{FieldContent, "hello", true, func(x Shape) bool { return x.Content == "hello" }},
		{FieldBgColor, 12, false, nil},
		{FieldFontSize, "big", false, nil},
		{FieldFontSize, 0, false, nil},
		{FieldBorderSize, -1, false, nil},
		{Field("layer"), 3, false, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s=%v", tt.field, tt.value), func(t *testing.T) {
			rev := s.Revision()
			assert.Equal(t, tt.ok, s.SetField(sh.ID, tt.field, tt.value))
			got, _ := s.Get(sh.ID)
			if tt.ok {
				assert.True(t, tt.check(got))
				assert.Greater(t, s.Revision(), rev)
			} else {
				assert.Equal(t, rev, s.Revision())
			}
		})
	}

	// Labels on box shapes never resize the box.
	got, _ := s.Get(sh.ID)
	assert.Equal(t, 50.0, got.Width)
}

func TestSetFieldUnknownIDIsNoop(t *testing.T) {
	s := newTestStore()
	s.Append(Shape{Type: TypeSquare})
	rev := s.Revision()
	assert.False(t, s.SetField("missing", FieldBgColor, "red"))
	assert.Equal(t, rev, s.Revision())
}

func TestSetFieldRelayoutsText(t *testing.T) {
	s := newTestStore()
	sh, _ := s.Append(Shape{Type: TypeText, ContentType: ContentText})

	require.True(t, s.SetField(sh.ID, FieldContent, "abc"))
	got, _ := s.Get(sh.ID)
	assert.Equal(t, 30.0+2*DefaultTextPadding, got.Width)
	assert.Equal(t, DefaultFontSize+2*DefaultTextPadding, got.Height)

	require.True(t, s.SetField(sh.ID, FieldFontSize, 40))
	got, _ = s.Get(sh.ID)
	assert.Equal(t, 40.0+2*DefaultTextPadding, got.Height)
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	a, _ := s.Append(Shape{Type: TypeSquare})
	b, _ := s.Append(Shape{Type: TypeSquare})
	c, _ := s.Append(Shape{Type: TypeSquare})
	s.Select(b.ID)

	require.True(t, s.Remove(b.ID))
	assert.False(t, s.Remove(b.ID))
	assert.Equal(t, "", s.Selected())

	_, ok := s.Get(c.ID)
	assert.True(t, ok, "index must be rebuilt after removal")
	assert.True(t, s.Move(c.ID, 1, 1))
	shapes := s.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, a.ID, shapes[0].ID)
	assert.Equal(t, c.ID, shapes[1].ID)
}

func TestSelect(t *testing.T) {
	s := newTestStore()
	a, _ := s.Append(Shape{Type: TypeSquare})
	s.Select(a.ID)
	assert.Equal(t, a.ID, s.Selected())
	s.Select("nope")
	assert.Equal(t, "", s.Selected())
	s.Select(a.ID)
	s.ClearSelection()
	assert.Equal(t, "", s.Selected())
}

func TestMove(t *testing.T) {
	s := newTestStore()
	a, _ := s.Append(Shape{Type: TypeSquare, CanvasX: 1, CanvasY: 2})
	require.True(t, s.Move(a.ID, 10, -2))
	got, _ := s.Get(a.ID)
	assert.Equal(t, geom.Pt(11, 0), got.Anchor())
	assert.False(t, s.Move("missing", 1, 1))
}

func TestHitTestTopmost(t *testing.T) {
	s := newTestStore()
	s.Append(Shape{ID: "bottom", Type: TypeSquare, Width: 100, Height: 100})
	s.Append(Shape{ID: "top", Type: TypeSquare, CanvasX: 50, CanvasY: 50, Width: 100, Height: 100})

	got, ok := s.HitTest(geom.Pt(75, 75), 0)
	require.True(t, ok)
	assert.Equal(t, "top", got.ID)

	got, ok = s.HitTest(geom.Pt(10, 10), 0)
	require.True(t, ok)
	assert.Equal(t, "bottom", got.ID)

	_, ok = s.HitTest(geom.Pt(500, 500), 0)
	assert.False(t, ok)
}

func TestHitTestLineWithSlop(t *testing.T) {
	s := newTestStore()
	s.Append(Shape{ID: "l", Type: TypeLine, Points: []float64{0, 0, 100, 0}})
	_, ok := s.HitTest(geom.Pt(50, 3), 0)
	assert.False(t, ok)
	_, ok = s.HitTest(geom.Pt(50, 3), 4)
	assert.True(t, ok)
}
