package ui

import (
	"image/color"
	"math"
	"strings"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// frameObjects converts a frame into fyne canvas objects in paint order.
// Commands that fall entirely outside the surface are skipped; the board
// draws a margin beyond the visible area that fyne does not need.
func frameObjects(f render.Frame, size fyne.Size) []fyne.CanvasObject {
	surface := geom.Rect{Right: float64(size.Width), Bottom: float64(size.Height)}
	var objects []fyne.CanvasObject
	for _, cmd := range f.Commands() {
		if !surface.Intersects(commandBounds(cmd)) {
			continue
		}
		objects = append(objects, commandObjects(cmd)...)
	}
	return objects
}

func commandBounds(cmd render.Command) geom.Rect {
	if len(cmd.Points) > 0 {
		return geom.Bounds(cmd.Points).Inset(-cmd.StrokeWidth)
	}
	h := cmd.H
	if cmd.Kind == render.KindText {
		h = math.Max(h, cmd.FontSize*float64(strings.Count(cmd.Text, "\n")+1))
	}
	return geom.RectFromXYWH(cmd.X, cmd.Y, cmd.W, h)
}

func commandObjects(cmd render.Command) []fyne.CanvasObject {
	switch cmd.Kind {
	case render.KindRect:
		rect := canvas.NewRectangle(orTransparent(cmd.Fill))
		rect.StrokeColor = orTransparent(cmd.Stroke)
		rect.StrokeWidth = float32(cmd.StrokeWidth)
		rect.CornerRadius = float32(cmd.Radius)
		place(rect, cmd)
		return []fyne.CanvasObject{rect}

	case render.KindEllipse:
		circle := canvas.NewCircle(orTransparent(cmd.Fill))
		circle.StrokeColor = orTransparent(cmd.Stroke)
		circle.StrokeWidth = float32(cmd.StrokeWidth)
		place(circle, cmd)
		return []fyne.CanvasObject{circle}

	case render.KindPolygon:
		var objects []fyne.CanvasObject
		if cmd.Fill != nil {
			objects = append(objects, polygonFill(cmd.Points, cmd.Fill))
		}
		stroke := cmd.Stroke
		if stroke == nil {
			stroke = cmd.Fill
		}
		closed := append(append([]geom.Point(nil), cmd.Points...), cmd.Points[0])
		return append(objects, segments(closed, stroke, math.Max(cmd.StrokeWidth, 1))...)

	case render.KindPolyline, render.KindLine:
		return segments(cmd.Points, cmd.Stroke, cmd.StrokeWidth)

	case render.KindText:
		var objects []fyne.CanvasObject
		for i, l := range strings.Split(cmd.Text, "\n") {
			t := canvas.NewText(l, orTransparent(cmd.Fill))
			t.TextSize = float32(cmd.FontSize)
			t.Move(fyne.NewPos(float32(cmd.X), float32(cmd.Y+float64(i)*cmd.FontSize)))
			objects = append(objects, t)
		}
		return objects

	case render.KindImage:
		img := canvas.NewImageFromFile(cmd.Text)
		img.FillMode = canvas.ImageFillContain
		place(img, cmd)
		return []fyne.CanvasObject{img}
	}
	return nil
}

func place(o fyne.CanvasObject, cmd render.Command) {
	o.Move(fyne.NewPos(float32(cmd.X), float32(cmd.Y)))
	o.Resize(fyne.NewSize(float32(cmd.W), float32(cmd.H)))
}

func segments(pts []geom.Point, c color.Color, width float64) []fyne.CanvasObject {
	if len(pts) < 2 {
		return nil
	}
	c = orTransparent(c)
	objects := make([]fyne.CanvasObject, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = float32(width)
		segment.Position1 = fyne.NewPos(float32(pts[i].X), float32(pts[i].Y))
		segment.Position2 = fyne.NewPos(float32(pts[i+1].X), float32(pts[i+1].Y))
		objects = append(objects, segment)
	}
	return objects
}

// polygonFill rasterizes the interior of a polygon over its bounding box.
func polygonFill(pts []geom.Point, fill color.Color) fyne.CanvasObject {
	b := geom.Bounds(pts)
	raster := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w == 0 || h == 0 {
			return color.Transparent
		}
		p := geom.Pt(
			b.Left+(float64(x)+0.5)*b.Width()/float64(w),
			b.Top+(float64(y)+0.5)*b.Height()/float64(h),
		)
		if insidePolygon(p, pts) {
			return fill
		}
		return color.Transparent
	})
	raster.Move(fyne.NewPos(float32(b.Left), float32(b.Top)))
	raster.Resize(fyne.NewSize(float32(b.Width()), float32(b.Height())))
	return raster
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(p geom.Point, pts []geom.Point) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, c := pts[i], pts[j]
		if (a.Y > p.Y) != (c.Y > p.Y) && p.X < (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func orTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}
