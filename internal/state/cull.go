package state

import (
	"math"

	"InfiniteBoard/internal/geom"
)

// Bounds returns the axis-aligned canvas-space extent of a shape. Point
// shapes use their real point extent, not the placeholder Width/Height.
func Bounds(s Shape) geom.Rect {
	switch {
	case s.Type == TypeCircle:
		rx, ry := math.Abs(s.Width), math.Abs(s.Height)
		return geom.Rect{Left: s.CanvasX - rx, Top: s.CanvasY - ry, Right: s.CanvasX + rx, Bottom: s.CanvasY + ry}
	case s.HasPoints():
		return geom.Bounds(s.AbsolutePoints())
	default:
		return geom.RectFromXYWH(s.CanvasX, s.CanvasY, s.Width, s.Height)
	}
}

// BoundingCircle returns a circle enclosing the shape, used as the coarse
// culling test. It never under-covers: for a box the radius is half the
// diagonal.
func BoundingCircle(s Shape) (center geom.Point, radius float64) {
	if s.Type == TypeCircle {
		return s.Anchor(), math.Max(math.Abs(s.Width), math.Abs(s.Height))
	}
	b := Bounds(s)
	return b.Center(), math.Hypot(b.Width(), b.Height()) / 2
}

// Visible reports whether a shape may be visible inside bounds. The circle
// test is conservative; the box test then drops shapes whose extent lies
// entirely outside bounds.
func Visible(s Shape, bounds geom.Rect) bool {
	c, r := BoundingCircle(s)
	if !bounds.CircleIntersects(c, r) {
		return false
	}
	return bounds.Intersects(Bounds(s))
}

// VisibleShapes returns copies of the shapes that may intersect bounds, in
// paint order.
func (s *Store) VisibleShapes(bounds geom.Rect) []Shape {
	out := make([]Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		if Visible(sh, bounds) {
			out = append(out, sh.clone())
		}
	}
	return out
}
