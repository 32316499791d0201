// Package diag holds the logger shared by the dockui packages.
package diag

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled returns false so callers skip
// formatting the message at all.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// SetLogger installs the logger used by layout, widget and render code.
// Nothing is logged until a logger is set. Passing nil restores the silent
// default. Safe for concurrent use.
//
// Levels:
//   - Debug: layout decisions (skipped containers, redirects, scroll re-entry),
//     widget update counts and built scenes
//   - Info: reference image regeneration and viewer reloads
//   - Warn: file watcher failures in the viewer
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return current.Load()
}

// Verbose installs a text handler on w at the given level. Used by the
// command line tools for their -v flag.
func Verbose(w io.Writer, level slog.Level) {
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
