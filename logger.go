package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while charts render on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggchart and the chartfile package.
// By default ggchart produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// Records written by ggchart:
//   - [slog.LevelDebug] "ggchart: planned": size, series, points, min, max,
//     plot and xticks of a chart that passed validation and layout
//   - [slog.LevelDebug] "ggchart: rendered": output path and PNG bytes
//   - [slog.LevelDebug] "ggchart: default font loaded": font name, once
//   - [slog.LevelDebug] "chartfile: loaded": series, points and labels read
//     from a chart file
//   - [slog.LevelWarn] "ggchart: close canvas" and
//     "ggchart: remove temporary file" when cleanup fails after a render
//
// Example:
//
//	ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggchart.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
