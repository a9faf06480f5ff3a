package render

import (
	"InfiniteBoard/internal/state"
	"InfiniteBoard/internal/viewport"
)

// Input is the state one render pass reads. Shapes are expected to be the
// result of culling against Viewport.ExtendedBounds, taken in the same call
// that produced Viewport and StoreRevision.
type Input struct {
	Viewport      viewport.Snapshot
	StoreRevision uint64
	Shapes        []state.Shape
	Selected      string
	Preview       *state.Shape
	Overlay       *Overlay
	ShowGrid      bool
	GridSpacing   float64
}

// Pass builds a frame. It has no side effects, so the same input always
// yields the same frame.
func Pass(in Input, opts Options) Frame {
	f := Frame{
		ViewportRevision: in.Viewport.Revision,
		StoreRevision:    in.StoreRevision,
		Viewport:         in.Viewport,
		Overlay:          in.Overlay,
	}
	if in.ShowGrid {
		f.Grid = Grid(in.Viewport, in.GridSpacing)
	}
	if in.Overlay != nil {
		opts.HideTextOf = in.Overlay.ShapeID
	}
	for _, s := range in.Shapes {
		f.Shapes = append(f.Shapes, ShapeCommands(s, in.Viewport, opts)...)
		if in.Selected != "" && s.ID == in.Selected {
			f.Selection = SelectionCommands(s, in.Viewport)
		}
	}
	if in.Preview != nil {
		f.Preview = ShapeCommands(*in.Preview, in.Viewport, opts)
	}
	return f
}
