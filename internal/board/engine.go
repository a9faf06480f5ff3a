// Package board is the interaction engine: it turns pointer, wheel and key
// events into viewport changes, shape drafts and committed shapes, and builds
// the frame a surface draws.
//
// An Engine is single-threaded. Surfaces that deliver events from several
// goroutines must serialize calls themselves.
package board

import (
	"log/slog"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/logging"
	"InfiniteBoard/internal/measure"
	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/state"
	"InfiniteBoard/internal/tool"
	"InfiniteBoard/internal/viewport"
)

// State is the pointer interaction state.
type State int

const (
	Idle State = iota
	Panning
	Drawing
	Moving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case Drawing:
		return "drawing"
	case Moving:
		return "moving"
	}
	return "unknown"
}

// PointerEvent is a pointer event in client coordinates. Origin is the
// surface's bounding rect; events without one are dropped.
type PointerEvent struct {
	ClientX, ClientY float64
	Ctrl             bool
	Origin           *viewport.ClientRect
}

// DefaultHitSlop is the extra canvas distance around a shape that still
// counts as a hit.
const DefaultHitSlop = 4.0

// Options configures an Engine. Zero fields take defaults.
type Options struct {
	Limits      viewport.Limits
	Render      render.Options
	Fill        render.ColorFunc
	Measurer    state.Measurer
	IDFunc      func() string
	ShowGrid    bool
	GridSpacing float64
	HitSlop     float64
}

// Engine owns the viewport, the scene store and the interaction state.
type Engine struct {
	vp    *viewport.Viewport
	store *state.Store
	opts  Options
	log   *slog.Logger

	tool  tool.Tool
	state State
	draft tool.Draft
	// moving is the id dragged in the Moving state.
	moving string
	// last is the previous client point while panning and the previous
	// canvas point while moving.
	last geom.Point

	session *Session
}

// New returns an engine with the select tool active.
func New(opts Options) *Engine {
	log := logging.For("board")
	if opts.Render == (render.Options{}) {
		opts.Render = render.DefaultOptions()
	}
	if opts.Fill == nil {
		opts.Fill = render.RandomFill(nil, render.DefaultLightness)
	}
	if opts.Measurer == nil {
		m, err := measure.New()
		if err != nil {
			log.Warn("text measurement disabled", "err", err)
		} else {
			opts.Measurer = m
		}
	}
	if opts.GridSpacing <= 0 {
		opts.GridSpacing = render.DefaultGridSpacing
	}
	if opts.HitSlop <= 0 {
		opts.HitSlop = DefaultHitSlop
	}

	storeOpts := []state.Option{state.WithTextLayout(opts.Render.TextPadding, opts.Render.FontSize)}
	if opts.Measurer != nil {
		storeOpts = append(storeOpts, state.WithMeasurer(opts.Measurer))
	}
	if opts.IDFunc != nil {
		storeOpts = append(storeOpts, state.WithIDFunc(opts.IDFunc))
	}

	return &Engine{
		vp:    viewport.New(opts.Limits),
		store: state.NewStore(storeOpts...),
		opts:  opts,
		log:   log,
		tool:  tool.Select,
	}
}

func (e *Engine) Store() *state.Store          { return e.store }
func (e *Engine) Viewport() *viewport.Viewport { return e.vp }
func (e *Engine) Tool() tool.Tool              { return e.tool }
func (e *Engine) State() State                 { return e.state }

// Draft returns the live draft, or nil outside the Drawing state.
func (e *Engine) Draft() tool.Draft { return e.draft }

// ShowGrid toggles the background grid.
func (e *Engine) ShowGrid(show bool) { e.opts.ShowGrid = show }

// GridShown reports whether the grid is drawn.
func (e *Engine) GridShown() bool { return e.opts.ShowGrid }

// Resize records the surface size.
func (e *Engine) Resize(w, h float64) { e.vp.SetSize(w, h) }

// SetTool switches the active tool. A live draft is discarded and any drag
// ends. It is refused while a text session is open.
func (e *Engine) SetTool(t tool.Tool) bool {
	if e.session != nil {
		e.log.Debug("tool change suppressed during text edit", "tool", t)
		return false
	}
	if e.state != Idle {
		e.log.Debug("drag abandoned by tool change", "state", e.state, "tool", t)
		e.endDrag()
	}
	e.tool = t
	return true
}

// PointerDown starts a pan, a draft, a move, an erase or a text edit
// depending on the modifier and the active tool.
func (e *Engine) PointerDown(ev PointerEvent) bool {
	if ev.Origin == nil {
		e.log.Debug("pointer down without origin dropped")
		return false
	}
	if e.session != nil {
		return e.CloseTextSession()
	}
	if e.state != Idle {
		return false
	}
	if ev.Ctrl {
		e.state = Panning
		e.last = geom.Pt(ev.ClientX, ev.ClientY)
		return true
	}

	p := e.vp.ScreenToCanvas(ev.ClientX, ev.ClientY, *ev.Origin)
	if d, ok := tool.Begin(e.tool, p); ok {
		e.draft = d
		e.state = Drawing
		e.log.Debug("draft started", "tool", e.tool, "x", p.X, "y", p.Y)
		return true
	}

	hit, onShape := e.store.HitTest(p, e.hitSlop())
	switch e.tool {
	case tool.Select:
		if !onShape {
			before := e.store.Selected()
			e.store.ClearSelection()
			return before != ""
		}
		e.store.Select(hit.ID)
		e.moving = hit.ID
		e.last = p
		e.state = Moving
		return true
	case tool.Eraser:
		if !onShape {
			return false
		}
		e.log.Debug("shape erased", "id", hit.ID)
		return e.store.Remove(hit.ID)
	case tool.Text:
		if onShape && hit.IsText() {
			return e.EditText(hit.ID, ev.Origin)
		}
		_, ok := e.OpenText(p, ev.Origin)
		return ok
	}
	return false
}

// PointerMove advances the current drag.
func (e *Engine) PointerMove(ev PointerEvent) bool {
	if ev.Origin == nil {
		return false
	}
	switch e.state {
	case Panning:
		cur := geom.Pt(ev.ClientX, ev.ClientY)
		d := cur.Sub(e.last)
		e.last = cur
		e.vp.PanBy(d.X, d.Y)
		return true
	case Drawing:
		e.draft.Update(e.vp.ScreenToCanvas(ev.ClientX, ev.ClientY, *ev.Origin))
		return true
	case Moving:
		p := e.vp.ScreenToCanvas(ev.ClientX, ev.ClientY, *ev.Origin)
		d := p.Sub(e.last)
		e.last = p
		if !e.store.Move(e.moving, d.X, d.Y) {
			e.endDrag()
		}
		return true
	}
	return false
}

// PointerUp ends the current drag. A draft is committed to the store and the
// tool returns to select.
func (e *Engine) PointerUp(PointerEvent) bool {
	switch e.state {
	case Panning, Moving:
		e.endDrag()
		return true
	case Drawing:
		e.commit()
		return true
	}
	return false
}

func (e *Engine) commit() {
	d := e.draft
	e.endDrag()
	if d == nil {
		return
	}
	s := d.Commit()
	s.BgColor = e.opts.Fill()
	stored, ok := e.store.Append(s)
	if !ok {
		return
	}
	e.tool = tool.Select
	e.log.Debug("shape committed", "id", stored.ID, "type", stored.Type)
}

func (e *Engine) endDrag() {
	e.draft = nil
	e.moving = ""
	e.state = Idle
}

// Wheel zooms one notch about the pointer. deltaY follows the browser
// convention: positive zooms out.
func (e *Engine) Wheel(clientX, clientY, deltaY float64, origin *viewport.ClientRect) bool {
	if origin == nil {
		return false
	}
	return e.vp.ZoomAt(clientX, clientY, deltaY, *origin)
}

// DoubleClick edits the text of the shape under the pointer, or creates a
// new text shape on empty canvas when the select or text tool is active.
func (e *Engine) DoubleClick(ev PointerEvent) bool {
	if ev.Origin == nil || e.session != nil {
		return false
	}
	p := e.vp.ScreenToCanvas(ev.ClientX, ev.ClientY, *ev.Origin)
	if hit, ok := e.store.HitTest(p, e.hitSlop()); ok {
		if !hit.IsText() {
			return false
		}
		return e.EditText(hit.ID, ev.Origin)
	}
	if !e.tool.TextEligible() {
		return false
	}
	_, ok := e.OpenText(p, ev.Origin)
	return ok
}

// DeleteSelected removes the selected shape.
func (e *Engine) DeleteSelected() bool {
	id := e.store.Selected()
	if id == "" || e.session != nil {
		return false
	}
	if e.moving == id {
		e.endDrag()
	}
	return e.store.Remove(id)
}

// Cancel abandons whatever is in progress: the draft, a pan or move, and an
// open text session, whose original text is restored.
func (e *Engine) Cancel() bool {
	changed := e.state != Idle
	e.endDrag()
	if e.session != nil {
		e.cancelText()
		changed = true
	}
	return changed
}

// Render builds the frame for the current state. The culled shapes and the
// viewport snapshot are read together so the frame is consistent.
func (e *Engine) Render() render.Frame {
	snap := e.vp.Snapshot()
	in := render.Input{
		Viewport:      snap,
		StoreRevision: e.store.Revision(),
		Shapes:        e.store.VisibleShapes(snap.ExtendedBounds()),
		Selected:      e.store.Selected(),
		ShowGrid:      e.opts.ShowGrid,
		GridSpacing:   e.opts.GridSpacing,
		Overlay:       e.overlay(snap),
	}
	if e.draft != nil {
		preview := e.draft.Shape()
		in.Preview = &preview
	}
	return render.Pass(in, e.opts.Render)
}

func (e *Engine) hitSlop() float64 {
	return e.opts.HitSlop / e.vp.Zoom()
}
