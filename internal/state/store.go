package state

import (
	"log/slog"
	"math"

	"InfiniteBoard/internal/geom"
	"InfiniteBoard/internal/logging"
)

// Defaults used when re-measuring text shapes.
const (
	DefaultFontSize    = 16.0
	DefaultTextPadding = 5.0
)

// Store owns the committed shapes, in insertion order, and the current
// selection. Shapes handed out are copies. A Store is driven from a single
// event loop and is not safe for concurrent use.
type Store struct {
	shapes   []Shape
	index    map[string]int
	selected string
	revision uint64

	newID       func() string
	measurer    Measurer
	textPadding float64
	fontSize    float64
	log         *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the uuid id generator.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithMeasurer sets the text measurer used to size text shapes.
func WithMeasurer(m Measurer) Option {
	return func(s *Store) { s.measurer = m }
}

// WithTextLayout sets the padding and fallback font size used when measuring.
func WithTextLayout(padding, fontSize float64) Option {
	return func(s *Store) {
		if padding >= 0 {
			s.textPadding = padding
		}
		if fontSize > 0 {
			s.fontSize = fontSize
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		index:       make(map[string]int),
		newID:       NewID,
		textPadding: DefaultTextPadding,
		fontSize:    DefaultFontSize,
		log:         logging.For("scene"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds shape at the end of the paint order and returns the stored
// copy. A shape without an id gets a fresh one. A shape whose id is already
// present is not added; the existing shape is returned with ok false.
func (s *Store) Append(shape Shape) (stored Shape, ok bool) {
	if shape.ID == "" {
		shape.ID = s.newID()
	}
	if i, exists := s.index[shape.ID]; exists {
		s.log.Warn("duplicate shape id ignored", "id", shape.ID)
		return s.shapes[i].clone(), false
	}
	shape.Width = math.Abs(shape.Width)
	shape.Height = math.Abs(shape.Height)
	shape = shape.clone()

	s.index[shape.ID] = len(s.shapes)
	s.shapes = append(s.shapes, shape)
	s.revision++
	s.log.Debug("shape appended", "id", shape.ID, "type", shape.Type, "count", len(s.shapes))
	return shape.clone(), true
}

// Get returns a copy of the shape with the given id.
func (s *Store) Get(id string) (Shape, bool) {
	i, ok := s.index[id]
	if !ok {
		return Shape{}, false
	}
	return s.shapes[i].clone(), true
}

// Shapes returns copies of all shapes in paint order.
func (s *Store) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	for i, sh := range s.shapes {
		out[i] = sh.clone()
	}
	return out
}

// Len returns the number of shapes.
func (s *Store) Len() int { return len(s.shapes) }

// Revision increases on every mutation.
func (s *Store) Revision() uint64 { return s.revision }

// SetField replaces one style or content field of the shape with the given
// id. Unknown ids, unknown fields and values of the wrong type are ignored
// and reported as false. Changing content or font size of a text shape
// re-measures it.
func (s *Store) SetField(id string, field Field, value any) bool {
	i, ok := s.index[id]
	if !ok {
		s.log.Debug("set field on unknown shape ignored", "id", id, "field", field)
		return false
	}
	sh := &s.shapes[i]

	switch field {
	case FieldContent, FieldBgColor, FieldBorderColor, FieldTextColor:
		str, ok := value.(string)
		if !ok {
			return false
		}
		switch field {
		case FieldContent:
			sh.Content = str
		case FieldBgColor:
			sh.BgColor = str
		case FieldBorderColor:
			sh.BorderColor = str
		case FieldTextColor:
			sh.TextColor = str
		}
	case FieldFontSize, FieldBorderSize, FieldBorderRadius:
		n, ok := toFloat(value)
		if !ok || n < 0 || (field == FieldFontSize && n == 0) {
			return false
		}
		switch field {
		case FieldFontSize:
			sh.FontSize = n
		case FieldBorderSize:
			sh.BorderSize = n
		case FieldBorderRadius:
			sh.BorderRadius = n
		}
	default:
		return false
	}

	if field == FieldContent || field == FieldFontSize {
		s.relayout(sh)
	}
	s.revision++
	s.log.Debug("shape field set", "id", id, "field", field)
	return true
}

// Relayout re-measures a text shape from its current content and font size.
// It reports false when id is unknown.
func (s *Store) Relayout(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	if s.relayout(&s.shapes[i]) {
		s.revision++
	}
	return true
}

func (s *Store) relayout(sh *Shape) bool {
	if sh.Type != TypeText || s.measurer == nil {
		return false
	}
	size := sh.FontSize
	if size <= 0 {
		size = s.fontSize
	}
	m := s.measurer.Measure(sh.Content, size, s.textPadding)
	sh.Width, sh.Height = math.Max(m.W, 0), math.Max(m.H, 0)
	return true
}

// Move translates a shape's anchor by (dx, dy) in canvas units.
func (s *Store) Move(id string, dx, dy float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.shapes[i].CanvasX += dx
	s.shapes[i].CanvasY += dy
	s.revision++
	return true
}

// Remove deletes a shape. Removing the selected shape clears the selection.
func (s *Store) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.shapes); j++ {
		s.index[s.shapes[j].ID] = j
	}
	if s.selected == id {
		s.selected = ""
	}
	s.revision++
	s.log.Debug("shape removed", "id", id, "count", len(s.shapes))
	return true
}

// Select makes id the current selection. An empty or unknown id clears it.
func (s *Store) Select(id string) {
	if _, ok := s.index[id]; !ok {
		id = ""
	}
	if id == s.selected {
		return
	}
	s.selected = id
	s.revision++
}

// ClearSelection is Select("").
func (s *Store) ClearSelection() { s.Select("") }

// Selected returns the selected id, or "" when nothing is selected.
func (s *Store) Selected() string { return s.selected }

// HitTest returns the topmost shape whose bounds, grown by slop, contain p.
func (s *Store) HitTest(p geom.Point, slop float64) (Shape, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if Bounds(s.shapes[i]).Inset(-slop).Contains(p) {
			return s.shapes[i].clone(), true
		}
	}
	return Shape{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return toFloat(float64(n))
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
