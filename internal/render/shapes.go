package render

import (
	"image/color"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/state"
	"InfiniteBoard/internal/viewport"
)

var (
	defaultFill   color.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	defaultStroke color.Color = color.NRGBA{A: 255}
	defaultText   color.Color = color.NRGBA{A: 255}
	selectColor   color.Color = color.NRGBA{R: 30, G: 120, B: 255, A: 255}
)

// ShapeCommands builds the commands for one shape. The shape may be a live
// preview with a negative width or height; boxes are normalized so the
// preview draws mirrored.
func ShapeCommands(s state.Shape, snap viewport.Snapshot, opts Options) []Command {
	z := snap.Zoom
	var out []Command

	switch s.Type {
	case state.TypeLine:
		return lineCommands(s, snap, opts)

	case state.TypeCircle:
		c := snap.ToSurface(s.Anchor())
		rx, ry := abs(s.Width)*z, abs(s.Height)*z
		out = append(out, Command{
			Kind: KindEllipse, ShapeID: s.ID,
			X: c.X - rx, Y: c.Y - ry, W: 2 * rx, H: 2 * ry,
			Fill:   colorOr(s.BgColor, defaultFill),
			Stroke: colorOr(s.BorderColor, nil), StrokeWidth: s.BorderSize * z,
		})

	case state.TypeDiamond, state.TypeHandDrawn:
		if !s.HasPoints() {
			break
		}
		pts := toSurface(s.AbsolutePoints(), snap)
		if s.Closed {
			out = append(out, Command{
				Kind: KindPolygon, ShapeID: s.ID, Points: pts,
				Fill:   colorOr(s.BgColor, defaultFill),
				Stroke: colorOr(s.BorderColor, nil), StrokeWidth: s.BorderSize * z,
			})
		} else {
			out = append(out, Command{
				Kind: KindPolyline, ShapeID: s.ID, Points: pts,
				Stroke: colorOr(s.BgColor, defaultStroke), StrokeWidth: strokeWidth(s, opts) * z,
			})
		}

	default:
		r := geom.RectFromXYWH(s.CanvasX, s.CanvasY, s.Width, s.Height)
		tl := snap.ToSurface(geom.Pt(r.Left, r.Top))
		var fill color.Color
		if s.Type != state.TypeText {
			fill = defaultFill
		}
		cmd := Command{
			Kind: KindRect, ShapeID: s.ID,
			X: tl.X, Y: tl.Y, W: r.Width() * z, H: r.Height() * z,
			Fill:   colorOr(s.BgColor, fill),
			Stroke: colorOr(s.BorderColor, nil), StrokeWidth: s.BorderSize * z,
			Radius: s.BorderRadius * z,
		}
		if cmd.Fill != nil || cmd.Stroke != nil {
			out = append(out, cmd)
		}
	}

	return append(out, contentCommands(s, snap, opts)...)
}

func contentCommands(s state.Shape, snap viewport.Snapshot, opts Options) []Command {
	if s.Content == "" || s.ID != "" && s.ID == opts.HideTextOf {
		return nil
	}
	z := snap.Zoom
	box := contentBox(s)
	tl := snap.ToSurface(geom.Pt(box.Left, box.Top))
	if s.ContentType == state.ContentImage {
		return []Command{{
			Kind: KindImage, ShapeID: s.ID,
			X: tl.X, Y: tl.Y, W: box.Width() * z, H: box.Height() * z,
			Text: s.Content,
		}}
	}
	fs := s.FontSize
	if fs <= 0 {
		fs = opts.FontSize
	}
	return []Command{{
		Kind: KindText, ShapeID: s.ID,
		X: tl.X + opts.TextPadding*z, Y: tl.Y + opts.TextPadding*z,
		W: box.Width() * z, H: box.Height() * z,
		Text: s.Content, FontSize: fs * z,
		Fill: colorOr(s.TextColor, defaultText),
	}}
}

// contentBox is the canvas rect a label or image fills.
func contentBox(s state.Shape) geom.Rect {
	switch s.Type {
	case state.TypeLine, state.TypeHandDrawn, state.TypeCircle:
		return state.Bounds(s)
	}
	return geom.RectFromXYWH(s.CanvasX, s.CanvasY, s.Width, s.Height)
}

// lineCommands draws the segment and, when it has length, the two arrowhead
// wings at its end.
func lineCommands(s state.Shape, snap viewport.Snapshot, opts Options) []Command {
	if !s.HasPoints() {
		return nil
	}
	pts := s.AbsolutePoints()
	from, to := pts[0], pts[len(pts)-1]
	stroke := colorOr(s.BgColor, defaultStroke)
	w := strokeWidth(s, opts) * snap.Zoom
	seg := func(a, b geom.Point) Command {
		return Command{
			Kind: KindLine, ShapeID: s.ID,
			Points: []geom.Point{snap.ToSurface(a), snap.ToSurface(b)},
			Stroke: stroke, StrokeWidth: w,
		}
	}
	out := []Command{seg(from, to)}
	if wings, ok := geom.ArrowWings(from, to, opts.WingLength, opts.WingAngle); ok {
		out = append(out, seg(to, wings[0]), seg(to, wings[1]))
	}
	return append(out, contentCommands(s, snap, opts)...)
}

// SelectionCommands outlines the selected shape.
func SelectionCommands(s state.Shape, snap viewport.Snapshot) []Command {
	b := state.Bounds(s)
	tl := snap.ToSurface(geom.Pt(b.Left, b.Top))
	return []Command{{
		Kind: KindRect, ShapeID: s.ID,
		X: tl.X - 2, Y: tl.Y - 2, W: b.Width()*snap.Zoom + 4, H: b.Height()*snap.Zoom + 4,
		Stroke: selectColor, StrokeWidth: 1,
	}}
}

func strokeWidth(s state.Shape, opts Options) float64 {
	if s.BorderSize > 0 {
		return s.BorderSize
	}
	return opts.StrokeWidth
}

func toSurface(pts []geom.Point, snap viewport.Snapshot) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = snap.ToSurface(p)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
