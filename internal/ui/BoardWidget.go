package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"InfiniteBoard/internal/board"
	"InfiniteBoard/internal/logging"
	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/state"
	"InfiniteBoard/internal/tool"
	"InfiniteBoard/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the fyne surface for a board engine. It converts fyne
// events to client-coordinate engine events and draws the engine's frames.
type BoardWidget struct {
	widget.BaseWidget
	mu        sync.Mutex
	engine    *board.Engine
	overlay   *textOverlay
	editing   string
	statusBar *widget.Label
	listeners []func()
	log       *slog.Logger
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(e *board.Engine) *BoardWidget {
	b := &BoardWidget{
		engine:    e,
		overlay:   newTextOverlay(),
		statusBar: widget.NewLabel("Ready"),
		log:       logging.For("ui"),
	}
	b.overlay.entry.OnChanged = b.textChanged
	b.overlay.entry.OnSubmitted = func(string) { b.closeText() }
	b.overlay.entry.onBlur = b.closeText
	b.overlay.entry.onCancel = b.Cancel
	b.ExtendBaseWidget(b)
	return b
}

// OnStateChange registers f to run after any event that changed the board.
func (b *BoardWidget) OnStateChange(f func()) {
	b.listeners = append(b.listeners, f)
}

// Tool returns the active tool.
func (b *BoardWidget) Tool() tool.Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.engine.Tool()
}

// Selected returns a copy of the selected shape.
func (b *BoardWidget) Selected() (state.Shape, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.engine.Store().Get(b.engine.Store().Selected())
}

func (b *BoardWidget) SetTool(t tool.Tool) bool {
	ok := false
	b.apply(func(e *board.Engine) bool {
		if e.Tool() == t {
			ok = true
			return false
		}
		ok = e.SetTool(t)
		return ok
	})
	return ok
}

// SetStyle changes one field of the selected shape.
func (b *BoardWidget) SetStyle(field state.Field, value any) bool {
	ok := false
	b.apply(func(e *board.Engine) bool {
		ok = e.Store().SetField(e.Store().Selected(), field, value)
		return ok
	})
	return ok
}

func (b *BoardWidget) Cancel() {
	b.apply(func(e *board.Engine) bool { return e.Cancel() })
}

func (b *BoardWidget) DeleteSelected() {
	b.apply(func(e *board.Engine) bool { return e.DeleteSelected() })
}

func (b *BoardWidget) ResetView() {
	b.apply(func(e *board.Engine) bool {
		e.Viewport().Reset()
		return true
	})
}

func (b *BoardWidget) ToggleGrid() {
	b.apply(func(e *board.Engine) bool {
		e.ShowGrid(!e.GridShown())
		return true
	})
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// apply runs fn against the engine under the lock. When fn reports a change
// the text overlay is reconciled, the board repainted and listeners run.
func (b *BoardWidget) apply(fn func(e *board.Engine) bool) {
	b.mu.Lock()
	changed := fn(b.engine)
	b.mu.Unlock()
	if !changed {
		return
	}
	b.Refresh()
	b.syncOverlay()
	b.updateStatus()
	for _, f := range b.listeners {
		f()
	}
}

// syncOverlay binds the entry to a newly opened session or releases it
// after the session closed. It must run without the lock held: focus
// changes call back into the board.
func (b *BoardWidget) syncOverlay() {
	b.mu.Lock()
	sess, open := b.engine.Session()
	b.mu.Unlock()

	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	switch {
	case open && b.editing != sess.TargetID:
		b.editing = sess.TargetID
		b.overlay.entry.OnChanged = nil
		b.overlay.entry.SetText(sess.Text)
		b.overlay.entry.OnChanged = b.textChanged
		b.log.Debug("text overlay bound", "id", sess.TargetID)
		if c != nil {
			c.Focus(b.overlay.entry)
		}
	case !open && b.editing != "":
		b.editing = ""
		if c != nil && c.Focused() == b.overlay.entry {
			c.Unfocus()
		}
	}
}

func (b *BoardWidget) textChanged(text string) {
	b.apply(func(e *board.Engine) bool { return e.UpdateText(text) })
}

func (b *BoardWidget) closeText() {
	b.apply(func(e *board.Engine) bool { return e.CloseTextSession() })
}

func (b *BoardWidget) updateStatus() {
	b.mu.Lock()
	status := fmt.Sprintf("%s | zoom %.0f%% | %d shapes",
		b.engine.Tool().Label(), b.engine.Viewport().Zoom()*100, b.engine.Store().Len())
	b.mu.Unlock()
	b.SetStatus(status)
}

// origin is the widget's bounding rect in window coordinates.
func (b *BoardWidget) origin() *viewport.ClientRect {
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	size := b.Size()
	return &viewport.ClientRect{
		Left:   float64(pos.X),
		Top:    float64(pos.Y),
		Width:  float64(size.Width),
		Height: float64(size.Height),
	}
}

func (b *BoardWidget) pointer(abs fyne.Position, mod fyne.KeyModifier) board.PointerEvent {
	return board.PointerEvent{
		ClientX: float64(abs.X),
		ClientY: float64(abs.Y),
		Ctrl:    mod&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0,
		Origin:  b.origin(),
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	ev := b.pointer(e.AbsolutePosition, e.Modifier)
	b.apply(func(en *board.Engine) bool { return en.PointerDown(ev) })
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	ev := b.pointer(e.AbsolutePosition, e.Modifier)
	b.apply(func(en *board.Engine) bool { return en.PointerUp(ev) })
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	ev := b.pointer(e.AbsolutePosition, 0)
	b.apply(func(en *board.Engine) bool { return en.PointerMove(ev) })
}

func (b *BoardWidget) DragEnd() {
	b.apply(func(en *board.Engine) bool { return en.PointerUp(board.PointerEvent{}) })
}

// Scrolled zooms about the pointer. fyne reports wheel-up as a positive DY,
// the opposite sign of a browser wheel delta.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	origin := b.origin()
	x, y := float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y)
	deltaY := -float64(e.Scrolled.DY)
	b.apply(func(en *board.Engine) bool { return en.Wheel(x, y, deltaY, origin) })
}

func (b *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	ev := b.pointer(e.AbsolutePosition, 0)
	b.apply(func(en *board.Engine) bool { return en.DoubleClick(ev) })
}

func (b *BoardWidget) frame(size fyne.Size) render.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.engine.Resize(float64(size.Width), float64(size.Height))
	return b.engine.Render()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255})
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	size := r.board.Size()
	f := r.board.frame(size)
	objects := []fyne.CanvasObject{r.background}
	objects = append(objects, frameObjects(f, size)...)
	r.board.overlay.layout(f.Overlay)
	r.objects = append(objects, r.board.overlay.wrap)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild()
}

func (r *boardWidgetRenderer) Destroy() {}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
