package ui

import (
	"strings"

	"InfiniteBoard/internal/geom"

	"fyne.io/fyne/v2"
)

// Measurer sizes labels with the running fyne theme, so the committed size
// matches what the board draws.
type Measurer struct {
	Style fyne.TextStyle
}

func (m Measurer) Measure(text string, fontSize, padding float64) geom.Size {
	lines := strings.Split(text, "\n")
	var widest float32
	for _, l := range lines {
		if s := fyne.MeasureText(l, float32(fontSize), m.Style); s.Width > widest {
			widest = s.Width
		}
	}
	return geom.Size{
		W: float64(widest) + 2*padding,
		H: float64(len(lines))*fontSize + 2*padding,
	}
}
