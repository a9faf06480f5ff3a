package state

import (
	"InfiniteBoard/internal/geom"
)

// ShapeType tags the renderable kind of a shape. It never changes after the
// shape is created.
type ShapeType string

const (
	TypeSquare    ShapeType = "square"
	TypeCircle    ShapeType = "circle"
	TypeDiamond   ShapeType = "diamond"
	TypeLine      ShapeType = "line"
	TypeHandDrawn ShapeType = "hand-drawn"
	TypeText      ShapeType = "text"
	TypeCustom    ShapeType = "custom"
)

// ContentType says how Content is shown: as a label or as an image source.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// Shape is a committed element of the board. Positions are canvas
// coordinates. For circles Width and Height are the two radii and
// (CanvasX, CanvasY) is the center; for every other type the anchor is the
// top-left corner or, for point shapes, the origin of Points.
type Shape struct {
	ID          string      `json:"id"`
	CanvasX     float64     `json:"canvasX"`
	CanvasY     float64     `json:"canvasY"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Type        ShapeType   `json:"type"`
	ContentType ContentType `json:"contentType"`
	Content     string      `json:"content"`
	// Points holds x,y pairs relative to (CanvasX, CanvasY).
	Points []float64 `json:"points,omitempty"`
	Closed bool      `json:"closed,omitempty"`

	BorderSize   float64 `json:"borderSize,omitempty"`
	BorderColor  string  `json:"borderColor,omitempty"`
	BorderRadius float64 `json:"borderRadius,omitempty"`
	BgColor      string  `json:"bgColor,omitempty"`
	TextColor    string  `json:"textColor,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"`

	Layer int `json:"layer"`
}

// Anchor returns (CanvasX, CanvasY) as a point.
func (s Shape) Anchor() geom.Point {
	return geom.Pt(s.CanvasX, s.CanvasY)
}

// AbsolutePoints returns Points translated into canvas coordinates.
func (s Shape) AbsolutePoints() []geom.Point {
	pts := geom.Unflatten(s.Points)
	for i := range pts {
		pts[i] = pts[i].Add(s.Anchor())
	}
	return pts
}

// HasPoints reports whether the shape carries a usable point path.
func (s Shape) HasPoints() bool {
	return len(s.Points) >= 4
}

// IsText reports whether Content is a text label.
func (s Shape) IsText() bool {
	return s.ContentType == ContentText
}

func (s Shape) clone() Shape {
	if s.Points != nil {
		s.Points = append([]float64(nil), s.Points...)
	}
	return s
}

// Field names a style or content field the style panel may change.
type Field string

const (
	FieldContent      Field = "content"
	FieldBgColor      Field = "bgColor"
	FieldBorderColor  Field = "borderColor"
	FieldTextColor    Field = "textColor"
	FieldFontSize     Field = "fontSize"
	FieldBorderSize   Field = "borderSize"
	FieldBorderRadius Field = "borderRadius"
)

// Palette colors and font sizes offered by the style panel.
var (
	PaletteColors = []string{"red", "green", "black", "white", "blue"}
	FontSizes     = []float64{16, 20, 24, 32, 40}
)

// Measurer reports the rendered size of text at a font size, including
// padding on every side.
type Measurer interface {
	Measure(text string, fontSize, padding float64) geom.Size
}
