// Package tool defines the board tools and the in-progress shape drafts each
// drawing tool produces.
package tool

import "strings"

// Tool is the active pointer tool.
type Tool string

const (
	Select    Tool = "select"
	Circle    Tool = "circle"
	Square    Tool = "square"
	Diamond   Tool = "diamond"
	HandDrawn Tool = "hand-drawn"
	Line      Tool = "line"
	Text      Tool = "text"
	Eraser    Tool = "eraser"
)

// All lists the tools in toolbar order.
var All = []Tool{Select, Circle, Square, Diamond, HandDrawn, Line, Text, Eraser}

var aliases = map[string]Tool{
	"eclipse":   Circle,
	"ellipse":   Circle,
	"rect":      Square,
	"rectangle": Square,
	"arrow":     Line,
	"pen":       HandDrawn,
	"freehand":  HandDrawn,
}

// Parse resolves a tool name, accepting the toolbar aliases ("eclipse",
// "arrow", ...). Matching is case-insensitive.
func Parse(name string) (Tool, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range All {
		if string(t) == name {
			return t, true
		}
	}
	t, ok := aliases[name]
	return t, ok
}

// Draws reports whether a pointer drag with this tool authors a shape.
func (t Tool) Draws() bool {
	_, ok := starters[t]
	return ok
}

// TextEligible reports whether a double-click on empty canvas with this tool
// opens a text editing session.
func (t Tool) TextEligible() bool {
	return t == Select || t == Text
}

// Label is the toolbar caption.
func (t Tool) Label() string {
	switch t {
	case HandDrawn:
		return "pen"
	case Line:
		return "arrow"
	case Circle:
		return "ellipse"
	default:
		return string(t)
	}
}
