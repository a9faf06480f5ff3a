// Package render turns shapes and viewport state into screen-space draw
// commands. Nothing here touches a real surface; the fyne widget and the
// tests both consume the same Frame.
package render

import (
	"image/color"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/viewport"
)

// Kind is the primitive a Command draws.
type Kind string

const (
	KindRect     Kind = "rect"
	KindEllipse  Kind = "ellipse"
	KindPolygon  Kind = "polygon"
	KindPolyline Kind = "polyline"
	KindLine     Kind = "line"
	KindText     Kind = "text"
	KindImage    Kind = "image"
)

// Command is one primitive in surface-local screen coordinates.
//
// Rect, ellipse, text and image use the box (X, Y, W, H); for ellipses it is
// the bounding box. Polygon, polyline and line use Points. Text carries the
// label for text commands and the source for image commands.
type Command struct {
	Kind        Kind
	ShapeID     string
	X, Y, W, H  float64
	Points      []geom.Point
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	Radius      float64
	Text        string
	FontSize    float64
}

// Options controls how shapes are turned into commands.
type Options struct {
	WingLength  float64
	WingAngle   float64
	StrokeWidth float64
	TextPadding float64
	FontSize    float64
	// HideTextOf suppresses the label of one shape, the one being edited.
	HideTextOf string
}

// Default values used by DefaultOptions.
const (
	DefaultStrokeWidth = 2.0
	DefaultTextPadding = 5.0
	DefaultFontSize    = 16.0
	DefaultGridSpacing = 50.0
)

// DefaultOptions returns the stock arrowhead and text settings.
func DefaultOptions() Options {
	return Options{
		WingLength:  geom.DefaultWingLength,
		WingAngle:   geom.DefaultWingAngle,
		StrokeWidth: DefaultStrokeWidth,
		TextPadding: DefaultTextPadding,
		FontSize:    DefaultFontSize,
	}
}

// Overlay places the text editor over the shape being edited.
type Overlay struct {
	ShapeID  string
	X, Y     float64
	W, H     float64
	FontSize float64
	Text     string
}

// Frame is everything one repaint draws, in paint order: grid, shapes,
// selection, preview. The revisions identify the state it was built from.
type Frame struct {
	ViewportRevision uint64
	StoreRevision    uint64
	Viewport         viewport.Snapshot
	Grid             []Command
	Shapes           []Command
	Selection        []Command
	Preview          []Command
	Overlay          *Overlay
}

// Commands returns every command of the frame in paint order.
func (f Frame) Commands() []Command {
	out := make([]Command, 0, len(f.Grid)+len(f.Shapes)+len(f.Selection)+len(f.Preview))
	out = append(out, f.Grid...)
	out = append(out, f.Shapes...)
	out = append(out, f.Selection...)
	return append(out, f.Preview...)
}
