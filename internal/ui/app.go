package ui

import (
	"InfiniteBoard/internal/board"
	"InfiniteBoard/internal/config"
	"InfiniteBoard/internal/logging"
	"InfiniteBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// EngineOptions maps the configuration onto engine options. Text is measured
// with the fyne theme so labels fit what the board draws.
func EngineOptions(cfg *config.Config) board.Options {
	return board.Options{
		Limits:      cfg.ViewportLimits(),
		Render:      cfg.RenderOptions(),
		Fill:        render.RandomFill(nil, cfg.Style.FillLightness),
		Measurer:    Measurer{},
		ShowGrid:    cfg.Grid.Show,
		GridSpacing: cfg.Grid.Spacing,
	}
}

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	// Create the interactive board widget
	b := NewBoardWidget(board.New(EngineOptions(cfg)))

	toolbar := NewToolbar(b)
	sidebar := NewSidebar(b)

	// The board draws past its edges; a non-scrolling scroll container clips it.
	clip := container.NewScroll(b)
	clip.Direction = container.ScrollNone

	myWindow.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		switch k.Name {
		case fyne.KeyEscape:
			b.Cancel()
		case fyne.KeyDelete, fyne.KeyBackspace:
			b.DeleteSelected()
		}
	})

	// Set up the main layout
	content := container.NewBorder(toolbar, b.statusBar, nil, sidebar, clip)

	logging.For("ui").Info("window opened", "title", cfg.Window.Title)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
