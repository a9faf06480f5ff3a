package viewport

import (
	"math"
	"math/rand"
	"testing"

	"InfiniteBoard/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestScreenToCanvas(t *testing.T) {
	v := New(Limits{})
	v.PanBy(20, -10)
	require.True(t, v.SetZoom(2))

	p := v.ScreenToCanvas(130, 90, ClientRect{Left: 10, Top: 0})
	assert.InDelta(t, 50, p.X, tol)
	assert.InDelta(t, 50, p.Y, tol)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		v := New(Limits{})
		v.SetZoom(0.1 + rng.Float64()*9.9)
		v.PanBy(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		origin := ClientRect{Left: rng.Float64() * 300, Top: rng.Float64() * 300, Width: 800, Height: 600}

		cx, cy := rng.Float64()*2000-500, rng.Float64()*2000-500
		p := v.ScreenToCanvas(cx, cy, origin)
		x, y := v.CanvasToScreen(p, origin)
		assert.InDelta(t, cx, x, 1e-6)
		assert.InDelta(t, cy, y, 1e-6)
	}
}

func TestZoomScenario(t *testing.T) {
	v := New(Limits{})
	require.True(t, v.ZoomAt(400, 300, -1, ClientRect{}))
	assert.InDelta(t, 1.1, v.Zoom(), tol)
	assert.InDelta(t, -40, v.Pan().X, tol)
	assert.InDelta(t, -30, v.Pan().Y, tol)
}

func TestZoomKeepsCursorPointFixed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := New(Limits{})
		v.SetZoom(0.2 + rng.Float64()*5)
		v.PanBy(rng.Float64()*1000-500, rng.Float64()*1000-500)
		origin := ClientRect{Left: rng.Float64() * 100, Top: rng.Float64() * 100}
		cx, cy := rng.Float64()*1200, rng.Float64()*900
		delta := 1.0
		if rng.Intn(2) == 0 {
			delta = -1
		}

		before := v.ScreenToCanvas(cx, cy, origin)
		v.ZoomAt(cx, cy, delta, origin)
		after := v.ScreenToCanvas(cx, cy, origin)
		assert.InDelta(t, before.X, after.X, 1e-6)
		assert.InDelta(t, before.Y, after.Y, 1e-6)
	}
}

func TestZoomClamped(t *testing.T) {
	v := New(Limits{})
	for i := 0; i < 200; i++ {
		v.ZoomAt(0, 0, -1, ClientRect{})
	}
	assert.Equal(t, DefaultMaxZoom, v.Zoom())

	rev := v.Revision()
	pan := v.Pan()
	assert.False(t, v.ZoomAt(100, 100, -1, ClientRect{}), "zoom past max must be rejected")
	assert.Equal(t, rev, v.Revision())
	assert.Equal(t, pan, v.Pan())

	for i := 0; i < 200; i++ {
		v.ZoomAt(0, 0, 1, ClientRect{})
	}
	assert.Equal(t, DefaultMinZoom, v.Zoom())
	assert.False(t, v.ZoomAt(0, 0, 1, ClientRect{}))
}

func TestSetZoomNaN(t *testing.T) {
	v := New(Limits{})
	assert.False(t, v.SetZoom(math.NaN()))
	assert.Equal(t, 1.0, v.Zoom())
}

func TestPanBy(t *testing.T) {
	v := New(Limits{})
	v.PanBy(5, 7)
	v.PanBy(-2, 3)
	assert.Equal(t, geom.Pt(3, 10), v.Pan())
}

func TestVisibleAndExtendedBounds(t *testing.T) {
	v := New(Limits{})
	v.SetSize(800, 600)
	v.PanBy(-100, -50)
	v.SetZoom(2)

	vis := v.Visible()
	assert.InDelta(t, 50, vis.Left, tol)
	assert.InDelta(t, 25, vis.Top, tol)
	assert.InDelta(t, 450, vis.Right, tol)
	assert.InDelta(t, 325, vis.Bottom, tol)

	ext := v.ExtendedBounds()
	assert.True(t, ext.ContainsRect(vis))
	assert.InDelta(t, 50-0.5*400, ext.Left, tol)
	assert.InDelta(t, 25-0.5*300, ext.Top, tol)
	assert.InDelta(t, 50+2*400, ext.Right, tol)
	assert.InDelta(t, 25+2*300, ext.Bottom, tol)
}

func TestSnapshotIsolated(t *testing.T) {
	v := New(Limits{})
	s := v.Snapshot()
	v.PanBy(10, 10)
	assert.Equal(t, geom.Point{}, s.Pan)
	assert.NotEqual(t, s.Revision, v.Revision())
}

func TestLimitsDefaults(t *testing.T) {
	l := Limits{MinZoom: 0.5, MaxZoom: 0.2}.withDefaults()
	assert.Equal(t, 0.5, l.MinZoom)
	assert.Equal(t, DefaultMaxZoom, l.MaxZoom)
	assert.Equal(t, DefaultZoomStep, l.ZoomStep)
}
