package ui

import (
	"fmt"

	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// NewSidebar builds the style panel. Every control edits the selected
// shape and the controls are hidden while nothing is selected.
func NewSidebar(board *BoardWidget) fyne.CanvasObject {
	title := widget.NewLabel("No selection")

	palette := func(field state.Field) fyne.CanvasObject {
		row := container.NewHBox()
		for _, name := range state.PaletteColors {
			c, _ := render.ParseColor(name)
			row.Add(newColorSwatch(name, c, func(n string) {
				board.SetStyle(field, n)
			}))
		}
		return row
	}

	sizes := make([]string, len(state.FontSizes))
	for i, s := range state.FontSizes {
		sizes[i] = fmt.Sprint(s)
	}
	fontSize := widget.NewSelect(sizes, func(v string) {
		for _, s := range state.FontSizes {
			if fmt.Sprint(s) == v {
				board.SetStyle(state.FieldFontSize, s)
			}
		}
	})

	borderSize := widget.NewSlider(0, 10)
	borderSize.Step = 1
	borderSize.OnChangeEnded = func(v float64) {
		board.SetStyle(state.FieldBorderSize, v)
	}
	borderRadius := widget.NewSlider(0, 40)
	borderRadius.Step = 2
	borderRadius.OnChangeEnded = func(v float64) {
		board.SetStyle(state.FieldBorderRadius, v)
	}

	controls := container.NewVBox(
		widget.NewLabel("Background"), palette(state.FieldBgColor),
		widget.NewLabel("Border"), palette(state.FieldBorderColor),
		widget.NewLabel("Text"), palette(state.FieldTextColor),
		widget.NewLabel("Font size"), fontSize,
		widget.NewLabel("Border width"), borderSize,
		widget.NewLabel("Corner radius"), borderRadius,
	)

	refresh := func() {
		s, ok := board.Selected()
		if !ok {
			title.SetText("No selection")
			controls.Hide()
			return
		}
		title.SetText(string(s.Type))
		if s.FontSize > 0 {
			fontSize.Selected = fmt.Sprint(s.FontSize)
		} else {
			fontSize.Selected = ""
		}
		fontSize.Refresh()
		borderSize.Value = s.BorderSize
		borderSize.Refresh()
		borderRadius.Value = s.BorderRadius
		borderRadius.Refresh()
		controls.Show()
	}
	board.OnStateChange(refresh)
	refresh()

	return container.NewVBox(
		title,
		widget.NewSeparator(),
		controls,
		layout.NewSpacer(),
	)
}
