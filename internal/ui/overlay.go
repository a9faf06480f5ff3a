package ui

import (
	"InfiniteBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// overlayEntry is the text editor shown over a shape while its label is
// edited. Losing focus commits; Escape cancels.
type overlayEntry struct {
	widget.Entry
	onBlur   func()
	onCancel func()
}

func newOverlayEntry() *overlayEntry {
	e := &overlayEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

func (e *overlayEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}

func (e *overlayEntry) TypedKey(k *fyne.KeyEvent) {
	if k.Name == fyne.KeyEscape {
		if e.onCancel != nil {
			e.onCancel()
		}
		return
	}
	e.Entry.TypedKey(k)
}

// textSizeTheme overrides only the text size of the app theme.
type textSizeTheme struct {
	fyne.Theme
	size float32
}

func (t textSizeTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText {
		return t.size
	}
	return t.Theme.Size(n)
}

// textOverlay positions the entry from a frame and scales its font with
// the zoom.
type textOverlay struct {
	entry    *overlayEntry
	wrap     *container.ThemeOverride
	fontSize float32
}

func newTextOverlay() *textOverlay {
	e := newOverlayEntry()
	o := &textOverlay{
		entry: e,
		wrap:  container.NewThemeOverride(e, textSizeTheme{Theme: theme.DefaultTheme(), size: theme.TextSize()}),
	}
	o.wrap.Hide()
	return o
}

func (o *textOverlay) layout(ov *render.Overlay) {
	if ov == nil {
		o.wrap.Hide()
		return
	}
	if fs := float32(ov.FontSize); fs > 0 && fs != o.fontSize {
		o.fontSize = fs
		o.wrap.Theme = textSizeTheme{Theme: theme.DefaultTheme(), size: fs}
		o.wrap.Refresh()
	}
	ms := o.entry.MinSize()
	pad := 2 * theme.InnerPadding()
	o.wrap.Move(fyne.NewPos(float32(ov.X)-pad/2, float32(ov.Y)-pad/2))
	o.wrap.Resize(fyne.NewSize(
		max(float32(ov.W)+pad, ms.Width),
		max(float32(ov.H)+pad, ms.Height),
	))
	o.wrap.Show()
}
