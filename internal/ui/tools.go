package ui

import (
	"image/color"

	"InfiniteBoard/internal/tool"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Name     string
	Color    color.Color
	OnTapped func(name string)
}

func newColorSwatch(name string, c color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Name: name, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	labels := make([]string, len(tool.All))
	for i, t := range tool.All {
		labels[i] = t.Label()
	}
	tools := widget.NewRadioGroup(labels, nil)
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(board.Tool().Label())
	tools.OnChanged = func(label string) {
		t, ok := tool.Parse(label)
		if !ok || !board.SetTool(t) {
			// Refused while a label is being edited.
			tools.SetSelected(board.Tool().Label())
		}
	}
	board.OnStateChange(func() {
		if cur := board.Tool().Label(); tools.Selected != cur {
			tools.SetSelected(cur)
		}
	})

	// toolbar with built-in tooltips
	view := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomFitIcon(), board.ResetView),
		widget.NewToolbarAction(theme.GridIcon(), board.ToggleGrid),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), board.DeleteSelected),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		view,
		layout.NewSpacer(),
	)
}
