package board

import (
	"strings"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/render"
	"InfiniteBoard/internal/state"
	"InfiniteBoard/internal/tool"
	"InfiniteBoard/internal/viewport"
)

// Session is an open text edit of one shape's content.
type Session struct {
	TargetID string
	// ScreenX and ScreenY are the client position of the edited shape's
	// top-left corner when the session opened.
	ScreenX, ScreenY float64
	Text             string
	Original         string
	// Created is set when the session made the target shape itself.
	Created bool
}

// Session returns a copy of the open text session.
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// OpenText creates an empty text shape at canvas point p and starts editing
// it. It returns the new shape's id.
func (e *Engine) OpenText(p geom.Point, origin *viewport.ClientRect) (string, bool) {
	if e.session != nil || origin == nil {
		return "", false
	}
	s, ok := e.store.Append(state.Shape{
		Type:        state.TypeText,
		ContentType: state.ContentText,
		CanvasX:     p.X,
		CanvasY:     p.Y,
	})
	if !ok {
		return "", false
	}
	e.store.Relayout(s.ID)
	if !e.open(s.ID, true, origin) {
		return "", false
	}
	return s.ID, true
}

// EditText starts editing the content of an existing shape.
func (e *Engine) EditText(id string, origin *viewport.ClientRect) bool {
	if e.session != nil || origin == nil {
		return false
	}
	return e.open(id, false, origin)
}

func (e *Engine) open(id string, created bool, origin *viewport.ClientRect) bool {
	s, ok := e.store.Get(id)
	if !ok {
		return false
	}
	e.endDrag()
	b := state.Bounds(s)
	x, y := e.vp.CanvasToScreen(geom.Pt(b.Left, b.Top), *origin)
	e.session = &Session{
		TargetID: id,
		ScreenX:  x,
		ScreenY:  y,
		Text:     s.Content,
		Original: s.Content,
		Created:  created,
	}
	e.store.Select(id)
	e.log.Debug("text session opened", "id", id, "created", created)
	return true
}

// UpdateText applies the editor's current text to the target shape, which
// is re-measured when it is a text shape.
func (e *Engine) UpdateText(text string) bool {
	if e.session == nil {
		return false
	}
	e.session.Text = text
	if !e.store.SetField(e.session.TargetID, state.FieldContent, text) {
		// The target is gone; nothing is left to edit.
		e.session = nil
		return false
	}
	return true
}

// CloseTextSession commits the edited text and switches to the select tool.
// A shape the session created and left blank is removed.
func (e *Engine) CloseTextSession() bool {
	s := e.session
	if s == nil {
		return false
	}
	e.session = nil
	e.tool = tool.Select

	if s.Created && strings.TrimSpace(s.Text) == "" {
		e.store.Remove(s.TargetID)
		e.log.Debug("empty text shape discarded", "id", s.TargetID)
		return true
	}
	e.store.SetField(s.TargetID, state.FieldContent, s.Text)
	e.store.Relayout(s.TargetID)
	e.log.Debug("text session closed", "id", s.TargetID)
	return true
}

func (e *Engine) cancelText() {
	s := e.session
	e.session = nil
	if s.Created {
		e.store.Remove(s.TargetID)
		return
	}
	e.store.SetField(s.TargetID, state.FieldContent, s.Original)
	e.log.Debug("text session cancelled", "id", s.TargetID)
}

// overlay places the editor over the target in surface coordinates, scaled
// with the zoom so it lines up with the drawn shape.
func (e *Engine) overlay(snap viewport.Snapshot) *render.Overlay {
	if e.session == nil {
		return nil
	}
	s, ok := e.store.Get(e.session.TargetID)
	if !ok {
		return nil
	}
	b := state.Bounds(s)
	tl := snap.ToSurface(geom.Pt(b.Left, b.Top))
	fs := s.FontSize
	if fs <= 0 {
		fs = e.opts.Render.FontSize
	}
	return &render.Overlay{
		ShapeID:  s.ID,
		X:        tl.X,
		Y:        tl.Y,
		W:        b.Width() * snap.Zoom,
		H:        b.Height() * snap.Zoom,
		FontSize: fs * snap.Zoom,
		Text:     e.session.Text,
	}
}
