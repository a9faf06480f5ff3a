package tool

import (
	"math"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/state"
)

// Draft is the uncommitted shape of the current drag. Exactly one variant is
// live at a time; a nil Draft means no drag is in progress.
//
// Shape returns the live geometry used for the preview. Commit returns the
// geometry to store, with sign-normalized sizes. Neither sets an id or fill.
type Draft interface {
	Tool() Tool
	Update(p geom.Point)
	Shape() state.Shape
	Commit() state.Shape
	draft()
}

var starters = map[Tool]func(start geom.Point) Draft{
	Circle:    func(p geom.Point) Draft { return &CircleDraft{Start: p, Center: p} },
	Square:    func(p geom.Point) Draft { return &RectDraft{X: p.X, Y: p.Y} },
	Diamond:   func(p geom.Point) Draft { return &DiamondDraft{Start: p, End: p} },
	HandDrawn: func(p geom.Point) Draft { return &FreehandDraft{Points: []geom.Point{p}} },
	Line:      func(p geom.Point) Draft { return &LineDraft{Start: p, End: p} },
}

// Begin starts a draft for t at canvas point start. ok is false for tools
// that do not draw.
func Begin(t Tool, start geom.Point) (d Draft, ok bool) {
	f, ok := starters[t]
	if !ok {
		return nil, false
	}
	return f(start), true
}

func base(typ state.ShapeType) state.Shape {
	return state.Shape{Type: typ, ContentType: state.ContentText}
}

// CircleDraft is an ellipse spanned between Start and the pointer.
type CircleDraft struct {
	Start            geom.Point
	Center           geom.Point
	RadiusX, RadiusY float64
}

func (*CircleDraft) draft()     {}
func (*CircleDraft) Tool() Tool { return Circle }

func (d *CircleDraft) Update(p geom.Point) {
	d.Center = d.Start.Midpoint(p)
	d.RadiusX = math.Abs(p.X - d.Center.X)
	d.RadiusY = math.Abs(p.Y - d.Center.Y)
}

func (d *CircleDraft) Shape() state.Shape {
	s := base(state.TypeCircle)
	s.CanvasX, s.CanvasY = d.Center.X, d.Center.Y
	s.Width, s.Height = d.RadiusX, d.RadiusY
	return s
}

func (d *CircleDraft) Commit() state.Shape { return d.Shape() }

// RectDraft is a rectangle from (X, Y) with a signed size; a drag up or left
// gives negative Width or Height.
type RectDraft struct {
	X, Y          float64
	Width, Height float64
}

func (*RectDraft) draft()     {}
func (*RectDraft) Tool() Tool { return Square }

func (d *RectDraft) Update(p geom.Point) {
	d.Width = p.X - d.X
	d.Height = p.Y - d.Y
}

func (d *RectDraft) Shape() state.Shape {
	s := base(state.TypeSquare)
	s.CanvasX, s.CanvasY = d.X, d.Y
	s.Width, s.Height = d.Width, d.Height
	return s
}

func (d *RectDraft) Commit() state.Shape {
	r := geom.RectFromXYWH(d.X, d.Y, d.Width, d.Height)
	s := base(state.TypeSquare)
	s.CanvasX, s.CanvasY = r.Left, r.Top
	s.Width, s.Height = r.Width(), r.Height()
	return s
}

// DiamondDraft tracks only the drag end points; the vertices are derived on
// demand so preview and commit share one construction.
type DiamondDraft struct {
	Start, End geom.Point
}

func (*DiamondDraft) draft()     {}
func (*DiamondDraft) Tool() Tool { return Diamond }

func (d *DiamondDraft) Update(p geom.Point) { d.End = p }

// Vertices returns the diamond corners in canvas coordinates. The drag start
// is the left vertex; the drag delta gives width and height.
func (d *DiamondDraft) Vertices() [4]geom.Point {
	w := d.End.X - d.Start.X
	h := d.End.Y - d.Start.Y
	center := geom.Pt(d.Start.X+w/2, d.Start.Y)
	return geom.DiamondVertices(center, w, h)
}

func (d *DiamondDraft) Shape() state.Shape {
	v := d.Vertices()
	box := geom.NormalizeToBoundingBox(v[:])
	s := base(state.TypeDiamond)
	s.CanvasX, s.CanvasY = box.MinX, box.MinY
	s.Width, s.Height = box.Width, box.Height
	s.Points = geom.Flatten(box.Relative)
	s.Closed = true
	return s
}

func (d *DiamondDraft) Commit() state.Shape { return d.Shape() }

// FreehandDraft accumulates raw pointer samples.
type FreehandDraft struct {
	Points []geom.Point
}

func (*FreehandDraft) draft()     {}
func (*FreehandDraft) Tool() Tool { return HandDrawn }

func (d *FreehandDraft) Update(p geom.Point) { d.Points = append(d.Points, p) }

// Shape anchors the stroke at its first sample. Width and Height are both
// the chord length, a placeholder rather than the stroke's true extent.
func (d *FreehandDraft) Shape() state.Shape {
	s := base(state.TypeHandDrawn)
	if len(d.Points) == 0 {
		return s
	}
	pts := d.Points
	if len(pts) == 1 {
		pts = []geom.Point{pts[0], pts[0]}
	}
	anchor := pts[0]
	rel := make([]geom.Point, len(pts))
	for i, p := range pts {
		rel[i] = p.Sub(anchor)
	}
	chord := geom.ChordLength(pts)
	s.CanvasX, s.CanvasY = anchor.X, anchor.Y
	s.Width, s.Height = chord, chord
	s.Points = geom.Flatten(rel)
	return s
}

func (d *FreehandDraft) Commit() state.Shape { return d.Shape() }

// LineDraft is a directed segment; the arrowhead sits at End.
type LineDraft struct {
	Start, End geom.Point
}

func (*LineDraft) draft()     {}
func (*LineDraft) Tool() Tool { return Line }

func (d *LineDraft) Update(p geom.Point) { d.End = p }

// Shape stores both end points directly in Points with a zero anchor. The
// arrowhead is not stored; renderers derive it from the end points.
func (d *LineDraft) Shape() state.Shape {
	s := base(state.TypeLine)
	s.Points = []float64{d.Start.X, d.Start.Y, d.End.X, d.End.Y}
	s.Width = math.Abs(d.End.X - d.Start.X)
	s.Height = math.Abs(d.End.Y - d.Start.Y)
	return s
}

func (d *LineDraft) Commit() state.Shape { return d.Shape() }
