// Package viewport owns zoom and pan and is the only place where screen and
// canvas coordinates are converted.
package viewport

import (
	"math"

	"InfiniteBoard/internal/geom"
)

// Defaults for a Viewport built with the zero Limits.
const (
	DefaultMinZoom     = 0.1
	DefaultMaxZoom     = 10.0
	DefaultZoomStep    = 1.1
	DefaultLeadMargin  = 1.5
	DefaultTrailMargin = 2.0
)

// ClientRect is the rendering surface's bounding rect in client coordinates.
type ClientRect struct {
	Left, Top     float64
	Width, Height float64
}

// Limits configures zoom clamping and the culling prefetch margins.
type Limits struct {
	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64
	// LeadMargin and TrailMargin are multiples of the visible extent, measured
	// from the visible origin, that the extended bounds reach on the
	// leading (left/top) and trailing (right/bottom) edges.
	LeadMargin  float64
	TrailMargin float64
}

func (l Limits) withDefaults() Limits {
	if l.MinZoom <= 0 {
		l.MinZoom = DefaultMinZoom
	}
	if l.MaxZoom <= 0 || l.MaxZoom < l.MinZoom {
		l.MaxZoom = DefaultMaxZoom
	}
	if l.ZoomStep <= 1 {
		l.ZoomStep = DefaultZoomStep
	}
	if l.LeadMargin < 1 {
		l.LeadMargin = DefaultLeadMargin
	}
	if l.TrailMargin < 1 {
		l.TrailMargin = DefaultTrailMargin
	}
	return l
}

// Snapshot is an immutable copy of the viewport state. Render passes work on
// a snapshot so culling and drawing agree on one revision.
type Snapshot struct {
	Zoom     float64
	Pan      geom.Point
	Size     geom.Size
	Revision uint64
	limits   Limits
}

// Viewport holds the zoom factor and the screen-space pan offset of the
// canvas origin. It is not safe for concurrent use.
type Viewport struct {
	zoom     float64
	pan      geom.Point
	size     geom.Size
	revision uint64
	limits   Limits
}

// New returns a viewport at zoom 1 with no pan.
func New(limits Limits) *Viewport {
	return &Viewport{zoom: 1, limits: limits.withDefaults()}
}

func (v *Viewport) Zoom() float64     { return v.zoom }
func (v *Viewport) Pan() geom.Point   { return v.pan }
func (v *Viewport) Size() geom.Size   { return v.size }
func (v *Viewport) Limits() Limits    { return v.limits }
func (v *Viewport) Revision() uint64  { return v.revision }
func (v *Viewport) Snapshot() Snapshot { return v.snapshot() }

func (v *Viewport) snapshot() Snapshot {
	return Snapshot{Zoom: v.zoom, Pan: v.pan, Size: v.size, Revision: v.revision, limits: v.limits}
}

// SetSize records the surface size used for culling. Negative sizes are
// treated as empty.
func (v *Viewport) SetSize(w, h float64) {
	s := geom.Size{W: math.Max(w, 0), H: math.Max(h, 0)}
	if s == v.size {
		return
	}
	v.size = s
	v.revision++
}

// SetZoom sets the zoom directly, clamped to the limits, without moving the
// pan. It reports whether the zoom changed.
func (v *Viewport) SetZoom(z float64) bool {
	z = v.clamp(z)
	if z == v.zoom {
		return false
	}
	v.zoom = z
	v.revision++
	return true
}

// Reset returns to zoom 1 and no pan.
func (v *Viewport) Reset() {
	v.zoom = 1
	v.pan = geom.Point{}
	v.revision++
}

// ScreenToCanvas converts a client-space point to canvas coordinates.
func (v *Viewport) ScreenToCanvas(clientX, clientY float64, origin ClientRect) geom.Point {
	return v.snapshot().ScreenToCanvas(clientX, clientY, origin)
}

// CanvasToScreen converts a canvas point back to client coordinates.
func (v *Viewport) CanvasToScreen(p geom.Point, origin ClientRect) (x, y float64) {
	return v.snapshot().CanvasToScreen(p, origin)
}

// ZoomAt zooms one wheel notch around the client point (clientX, clientY):
// out for deltaY > 0, in otherwise. The canvas point under the pointer stays
// under the pointer. It reports false, leaving state untouched, when the
// clamped zoom would not change.
func (v *Viewport) ZoomAt(clientX, clientY, deltaY float64, origin ClientRect) bool {
	old := v.zoom
	next := old * v.limits.ZoomStep
	if deltaY > 0 {
		next = old / v.limits.ZoomStep
	}
	next = v.clamp(next)
	if next == old {
		return false
	}
	p := geom.Pt(clientX-origin.Left, clientY-origin.Top)
	v.pan = p.Sub(p.Sub(v.pan).Mul(next / old))
	v.zoom = next
	v.revision++
	return true
}

// PanBy translates the canvas by a screen-space delta.
func (v *Viewport) PanBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	v.pan = v.pan.Add(geom.Pt(dx, dy))
	v.revision++
}

// Visible returns the literal visible region in canvas coordinates.
func (v *Viewport) Visible() geom.Rect { return v.snapshot().Visible() }

// ExtendedBounds returns the culling rectangle in canvas coordinates.
func (v *Viewport) ExtendedBounds() geom.Rect { return v.snapshot().ExtendedBounds() }

func (v *Viewport) clamp(z float64) float64 {
	if math.IsNaN(z) {
		return v.zoom
	}
	return math.Max(v.limits.MinZoom, math.Min(v.limits.MaxZoom, z))
}

// ScreenToCanvas converts a client-space point to canvas coordinates using
// the snapshot's zoom and pan.
func (s Snapshot) ScreenToCanvas(clientX, clientY float64, origin ClientRect) geom.Point {
	return geom.Point{
		X: (clientX - origin.Left - s.Pan.X) / s.Zoom,
		Y: (clientY - origin.Top - s.Pan.Y) / s.Zoom,
	}
}

// CanvasToScreen is the inverse of ScreenToCanvas.
func (s Snapshot) CanvasToScreen(p geom.Point, origin ClientRect) (x, y float64) {
	return p.X*s.Zoom + s.Pan.X + origin.Left, p.Y*s.Zoom + s.Pan.Y + origin.Top
}

// ToSurface maps a canvas point into surface-local screen coordinates.
func (s Snapshot) ToSurface(p geom.Point) geom.Point {
	return geom.Point{X: p.X*s.Zoom + s.Pan.X, Y: p.Y*s.Zoom + s.Pan.Y}
}

// Visible is the surface rectangle expressed in canvas coordinates.
func (s Snapshot) Visible() geom.Rect {
	left := -s.Pan.X / s.Zoom
	top := -s.Pan.Y / s.Zoom
	return geom.Rect{
		Left:   left,
		Top:    top,
		Right:  left + s.Size.W/s.Zoom,
		Bottom: top + s.Size.H/s.Zoom,
	}
}

// ExtendedBounds grows the visible region so shapes just off screen are
// already drawn when a pan brings them in.
func (s Snapshot) ExtendedBounds() geom.Rect {
	vis := s.Visible()
	w, h := vis.Width(), vis.Height()
	lead := s.limits.LeadMargin - 1
	return geom.Rect{
		Left:   vis.Left - lead*w,
		Top:    vis.Top - lead*h,
		Right:  vis.Left + s.limits.TrailMargin*w,
		Bottom: vis.Top + s.limits.TrailMargin*h,
	}
}
