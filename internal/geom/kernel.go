package geom

import "math"

// Arrowhead defaults, in canvas units and radians.
const (
	DefaultWingLength = 15.0
	DefaultWingAngle  = math.Pi / 6
)

// DiamondVertices returns the four corners of a diamond centered at c in the
// fixed order top, right, bottom, left.
func DiamondVertices(c Point, width, height float64) [4]Point {
	return [4]Point{
		{X: c.X, Y: c.Y - height/2},
		{X: c.X + width/2, Y: c.Y},
		{X: c.X, Y: c.Y + height/2},
		{X: c.X - width/2, Y: c.Y},
	}
}

// Box is the result of NormalizeToBoundingBox: the bounds of a point set and
// every point re-expressed as an offset from (MinX, MinY).
type Box struct {
	MinX, MinY    float64
	Width, Height float64
	Relative      []Point
}

// Rect returns the box as a rectangle in the original coordinate space.
func (b Box) Rect() Rect {
	return Rect{Left: b.MinX, Top: b.MinY, Right: b.MinX + b.Width, Bottom: b.MinY + b.Height}
}

// NormalizeToBoundingBox computes the axis-aligned bounds of points and
// rewrites each point relative to the top-left corner. An empty input yields
// the zero Box.
func NormalizeToBoundingBox(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Bounds(points)
	rel := make([]Point, len(points))
	for i, p := range points {
		rel[i] = Point{X: p.X - b.Left, Y: p.Y - b.Top}
	}
	return Box{
		MinX:     b.Left,
		MinY:     b.Top,
		Width:    b.Width(),
		Height:   b.Height(),
		Relative: rel,
	}
}

// Bounds returns the axis-aligned bounding rect of points. The caller must
// pass at least one point.
func Bounds(points []Point) Rect {
	r := Rect{Left: points[0].X, Top: points[0].Y, Right: points[0].X, Bottom: points[0].Y}
	for _, p := range points[1:] {
		r.Left = math.Min(r.Left, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Right = math.Max(r.Right, p.X)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// ArrowWings returns the two wing endpoints of an arrowhead whose tip sits at
// to, for the segment from -> to. ok is false for a zero-length segment,
// which has no direction and therefore no arrowhead.
func ArrowWings(from, to Point, wingLength, wingAngle float64) (wings [2]Point, ok bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return wings, false
	}
	angle := math.Atan2(dy, dx)
	wings[0] = Point{
		X: to.X - wingLength*math.Cos(angle-wingAngle),
		Y: to.Y - wingLength*math.Sin(angle-wingAngle),
	}
	wings[1] = Point{
		X: to.X - wingLength*math.Cos(angle+wingAngle),
		Y: to.Y - wingLength*math.Sin(angle+wingAngle),
	}
	return wings, true
}

// ChordLength is the straight-line distance between the first and last point
// of a path. It is an approximation of a stroke's extent, not its length or
// bounding diagonal, and is only used to seed freehand width/height.
func ChordLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	return points[0].Distance(points[len(points)-1])
}

// Flatten converts points to the flat x,y,x,y,... layout stored on shapes.
func Flatten(points []Point) []float64 {
	out := make([]float64, 0, len(points)*2)
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}

// Unflatten is the inverse of Flatten. A trailing odd value is dropped.
func Unflatten(flat []float64) []Point {
	out := make([]Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, Point{X: flat[i], Y: flat[i+1]})
	}
	return out
}
