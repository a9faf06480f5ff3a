package render

import (
	"image/color"
	"math"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/viewport"
)

var gridColor color.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 100}

// GridStep returns the canvas-space spacing that keeps the on-screen grid
// pitch within [spacing/2, 2*spacing] at the snapshot's zoom.
func GridStep(zoom, spacing float64) float64 {
	if spacing <= 0 || zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return 0
	}
	step := spacing
	for step*zoom < spacing/2 {
		step *= 2
	}
	for step*zoom > spacing*2 {
		step /= 2
	}
	return step
}

// Grid returns the grid lines covering the snapshot's extended bounds.
func Grid(snap viewport.Snapshot, spacing float64) []Command {
	step := GridStep(snap.Zoom, spacing)
	if step == 0 {
		return nil
	}
	b := snap.ExtendedBounds()
	if b.Width() <= 0 || b.Height() <= 0 {
		return nil
	}
	line := func(a, c geom.Point) Command {
		return Command{
			Kind:   KindLine,
			Points: []geom.Point{snap.ToSurface(a), snap.ToSurface(c)},
			Stroke: gridColor, StrokeWidth: 0.5,
		}
	}

	var out []Command
	for x := math.Floor(b.Left/step) * step; x <= b.Right; x += step {
		out = append(out, line(geom.Pt(x, b.Top), geom.Pt(x, b.Bottom)))
	}
	for y := math.Floor(b.Top/step) * step; y <= b.Bottom; y += step {
		out = append(out, line(geom.Pt(b.Left, y), geom.Pt(b.Right, y)))
	}
	return out
}
