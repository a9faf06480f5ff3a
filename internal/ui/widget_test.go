package ui

import (
	"testing"

	"InfiniteBoard/internal/board"
	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/tool"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) (*BoardWidget, *board.Engine) {
	t.Helper()
	test.NewTempApp(t)
	e := board.New(board.Options{Fill: render.Fixed("red"), Measurer: Measurer{}})
	b := NewBoardWidget(e)
	w := test.NewWindow(b)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(500, 400))
	return b, e
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestWidgetDrawsRectangle(t *testing.T) {
	b, e := newTestBoard(t)
	require.True(t, b.SetTool(tool.Square))

	b.MouseDown(mouse(20, 20))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(70, 50)}})
	b.MouseUp(mouse(70, 50))
	b.DragEnd()

	shapes := e.Store().Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, 50.0, shapes[0].Width)
	assert.Equal(t, 30.0, shapes[0].Height)
	assert.Equal(t, tool.Select, b.Tool())
}

func TestWidgetWheelZooms(t *testing.T) {
	b, e := newTestBoard(t)
	b.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(100, 100)},
		Scrolled:   fyne.Delta{DY: 1},
	})
	assert.InDelta(t, 1.1, e.Viewport().Zoom(), 1e-9)

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	assert.InDelta(t, 1.0, e.Viewport().Zoom(), 1e-9)
}

func TestWidgetTextEditing(t *testing.T) {
	b, e := newTestBoard(t)
	b.DoubleTapped(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(100, 100)})

	_, open := e.Session()
	require.True(t, open)
	assert.True(t, b.overlay.wrap.Visible())

	test.Type(b.overlay.entry, "hi")
	b.closeText()

	_, open = e.Session()
	assert.False(t, open)
	shapes := e.Store().Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, "hi", shapes[0].Content)
	assert.Greater(t, shapes[0].Width, 10.0)
}

func TestWidgetStyleEditsSelection(t *testing.T) {
	b, e := newTestBoard(t)
	b.SetTool(tool.Square)
	b.MouseDown(mouse(20, 20))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(80, 80)}})
	b.MouseUp(mouse(80, 80))

	assert.False(t, b.SetStyle("bgColor", "blue"), "nothing selected yet")
	b.MouseDown(mouse(50, 50))
	b.MouseUp(mouse(50, 50))
	require.True(t, b.SetStyle("bgColor", "blue"))
	s, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, "blue", s.BgColor)
	assert.Equal(t, s.ID, e.Store().Selected())
}

func TestMeasurerAddsPadding(t *testing.T) {
	test.NewTempApp(t)
	m := Measurer{}
	empty := m.Measure("", 16, 5)
	assert.Equal(t, 10.0, empty.W)
	assert.Equal(t, 26.0, empty.H)
	assert.Greater(t, m.Measure("hello", 16, 5).W, empty.W)
	assert.Equal(t, 2*16.0+10, m.Measure("a\nb", 16, 5).H)
}
