// Package geom holds the pure geometry used by the board: points, rectangles,
// diamond and arrowhead construction, and bounding-box normalization.
package geom

import "math"

// Point is a position or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle given by its edges. Right >= Left and
// Bottom >= Top for a well-formed rect.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromXYWH builds a rect from a corner and a size. Negative sizes are
// mirrored so the result is always well-formed.
func RectFromXYWH(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right < o.Left || o.Right < r.Left || r.Bottom < o.Top || o.Bottom < r.Top)
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// CircleIntersects reports whether the circle at c with radius rad overlaps r.
func (r Rect) CircleIntersects(c Point, rad float64) bool {
	nx := math.Max(r.Left, math.Min(c.X, r.Right))
	ny := math.Max(r.Top, math.Min(c.Y, r.Bottom))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= rad*rad
}
