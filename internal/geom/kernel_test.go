package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestDiamondVertices(t *testing.T) {
	v := DiamondVertices(Pt(50, 0), 100, 50)
	assert.Equal(t, [4]Point{{50, -25}, {100, 0}, {50, 25}, {0, 0}}, v)
}

func TestDiamondVertexSymmetry(t *testing.T) {
	tests := []struct {
		name string
		c    Point
		w, h float64
	}{
		{"unit", Pt(0, 0), 1, 1},
		{"wide", Pt(10, -4), 300, 20},
		{"tall", Pt(-250.5, 99), 3, 700},
		{"fractional", Pt(0.1, 0.2), 0.3, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DiamondVertices(tt.c, tt.w, tt.h)
			b := Bounds(v[:])
			assert.InDelta(t, tt.w, b.Width(), tol)
			assert.InDelta(t, tt.h, b.Height(), tol)

			var sum Point
			for _, p := range v {
				sum = sum.Add(p)
			}
			centroid := sum.Div(4)
			assert.InDelta(t, tt.c.X, centroid.X, tol)
			assert.InDelta(t, tt.c.Y, centroid.Y, tol)
		})
	}
}

func TestNormalizeToBoundingBox(t *testing.T) {
	v := DiamondVertices(Pt(50, 0), 100, 50)
	box := NormalizeToBoundingBox(v[:])
	assert.Equal(t, 0.0, box.MinX)
	assert.Equal(t, -25.0, box.MinY)
	assert.Equal(t, 100.0, box.Width)
	assert.Equal(t, 50.0, box.Height)
	assert.Equal(t, []float64{50, 0, 100, 25, 50, 50, 0, 25}, Flatten(box.Relative))
	assert.Equal(t, Rect{Left: 0, Top: -25, Right: 100, Bottom: 25}, box.Rect())
}

func TestNormalizeToBoundingBoxEmpty(t *testing.T) {
	assert.Equal(t, Box{}, NormalizeToBoundingBox(nil))
}

func TestArrowWings(t *testing.T) {
	wings, ok := ArrowWings(Pt(0, 0), Pt(100, 0), DefaultWingLength, DefaultWingAngle)
	require.True(t, ok)

	// Pointing along +X: wings fall back from the tip, mirrored across the axis.
	back := DefaultWingLength * math.Cos(DefaultWingAngle)
	side := DefaultWingLength * math.Sin(DefaultWingAngle)
	assert.InDelta(t, 100-back, wings[0].X, tol)
	assert.InDelta(t, side, wings[0].Y, tol)
	assert.InDelta(t, 100-back, wings[1].X, tol)
	assert.InDelta(t, -side, wings[1].Y, tol)

	for _, w := range wings {
		assert.InDelta(t, DefaultWingLength, w.Distance(Pt(100, 0)), tol)
	}
}

func TestArrowWingsDeterministic(t *testing.T) {
	a, _ := ArrowWings(Pt(3, 7), Pt(-40, 12), 20, 0.4)
	b, _ := ArrowWings(Pt(3, 7), Pt(-40, 12), 20, 0.4)
	assert.Equal(t, a, b)
}

func TestArrowWingsZeroLength(t *testing.T) {
	_, ok := ArrowWings(Pt(5, 5), Pt(5, 5), DefaultWingLength, DefaultWingAngle)
	assert.False(t, ok)
}

func TestChordLength(t *testing.T) {
	assert.Equal(t, 0.0, ChordLength(nil))
	assert.Equal(t, 0.0, ChordLength([]Point{{1, 1}}))
	// A loop returning near its start has a short chord regardless of path length.
	loop := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {3, 4}}
	assert.Equal(t, 5.0, ChordLength(loop))
}

func TestFlattenRoundTrip(t *testing.T) {
	pts := []Point{{1, 2}, {3, 4}, {-5, 6.5}}
	assert.Equal(t, pts, Unflatten(Flatten(pts)))
	assert.Equal(t, []Point{{1, 2}}, Unflatten([]float64{1, 2, 3}))
}

func TestRect(t *testing.T) {
	r := RectFromXYWH(10, 10, -4, 6)
	assert.Equal(t, Rect{Left: 6, Top: 10, Right: 10, Bottom: 16}, r)
	assert.True(t, r.Contains(Pt(8, 12)))
	assert.False(t, r.Contains(Pt(11, 12)))
	assert.True(t, r.Intersects(Rect{Left: 10, Top: 16, Right: 20, Bottom: 20}))
	assert.False(t, r.Intersects(Rect{Left: 10.1, Top: 0, Right: 20, Bottom: 20}))
	assert.True(t, r.Inset(-1).ContainsRect(r))
	assert.Equal(t, Pt(8, 13), r.Center())
}

func TestCircleIntersects(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	assert.True(t, r.CircleIntersects(Pt(5, 5), 1))
	assert.True(t, r.CircleIntersects(Pt(12, 5), 2))
	assert.False(t, r.CircleIntersects(Pt(12, 5), 1.9))
	// Corner distance is sqrt(2)*2 ~ 2.83.
	assert.False(t, r.CircleIntersects(Pt(12, 12), 2.8))
	assert.True(t, r.CircleIntersects(Pt(12, 12), 2.9))
}
