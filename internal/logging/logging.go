// Package logging holds the structured logger shared by the board packages.
// By default nothing is logged; main installs a real handler.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the shared logger. Passing nil restores the silent
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// For returns the shared logger tagged with a component name, e.g. "scene"
// or "board".
func For(component string) *slog.Logger {
	return Logger().With("component", component)
}

// ParseLevel maps a flag value to a slog level. Unknown names fall back to
// info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
