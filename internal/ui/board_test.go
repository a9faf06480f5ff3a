package ui

import (
	"image/color"
	"testing"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

func TestInsidePolygon(t *testing.T) {
	diamond := []geom.Point{{X: 50, Y: 0}, {X: 100, Y: 25}, {X: 50, Y: 50}, {X: 0, Y: 25}}
	assert.True(t, insidePolygon(geom.Pt(50, 25), diamond))
	assert.True(t, insidePolygon(geom.Pt(20, 25), diamond))
	assert.False(t, insidePolygon(geom.Pt(5, 5), diamond))
	assert.False(t, insidePolygon(geom.Pt(120, 25), diamond))
}

func TestFrameObjectsSkipsOffscreen(t *testing.T) {
	f := render.Frame{Shapes: []render.Command{
		{Kind: render.KindRect, X: 10, Y: 10, W: 20, H: 20, Fill: red},
		{Kind: render.KindRect, X: 900, Y: 10, W: 20, H: 20, Fill: red},
		{Kind: render.KindLine, Points: []geom.Point{{X: -50, Y: 5}, {X: 50, Y: 5}}, Stroke: red, StrokeWidth: 2},
	}}
	objects := frameObjects(f, fyne.NewSize(400, 300))
	require.Len(t, objects, 2)

	rect, ok := objects[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(10, 10), rect.Position())
	assert.Equal(t, fyne.NewSize(20, 20), rect.Size())

	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(-50, 5), line.Position1)
	assert.Equal(t, fyne.NewPos(50, 5), line.Position2)
	assert.Equal(t, float32(2), line.StrokeWidth)
}

func TestPolygonIsFilledAndOutlined(t *testing.T) {
	cmd := render.Command{
		Kind:   render.KindPolygon,
		Points: []geom.Point{{X: 50, Y: 0}, {X: 100, Y: 25}, {X: 50, Y: 50}, {X: 0, Y: 25}},
		Fill:   red,
	}
	objects := commandObjects(cmd)
	require.Len(t, objects, 5, "one raster and four closing edges")
	_, ok := objects[0].(*canvas.Raster)
	assert.True(t, ok)
	last := objects[4].(*canvas.Line)
	assert.Equal(t, fyne.NewPos(50, 0), last.Position2, "the outline closes on the first vertex")
}

func TestTextCommandSplitsLines(t *testing.T) {
	cmd := render.Command{Kind: render.KindText, X: 5, Y: 5, Text: "one\ntwo", FontSize: 20, Fill: red}
	objects := commandObjects(cmd)
	require.Len(t, objects, 2)
	second := objects[1].(*canvas.Text)
	assert.Equal(t, "two", second.Text)
	assert.Equal(t, float32(20), second.TextSize)
	assert.Equal(t, fyne.NewPos(5, 25), second.Position())
}

func TestNilColorsBecomeTransparent(t *testing.T) {
	objects := commandObjects(render.Command{Kind: render.KindEllipse, W: 10, H: 10})
	require.Len(t, objects, 1)
	c := objects[0].(*canvas.Circle)
	assert.Equal(t, color.Transparent, c.FillColor)
}
