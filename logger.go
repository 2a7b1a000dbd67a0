package blit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so surface
// allocation and copy paths skip building attributes when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Surfaces themselves are not safe for
// concurrent use, but the logger is shared by all of them and may be
// swapped from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes blit's diagnostics to l. Nothing is logged until it is
// called, and passing nil silences the package again.
//
// Every record is at [slog.LevelDebug] with a "blit:" message prefix:
//   - "blit: surface allocated" and "blit: empty surface" from NewSurface,
//     with width and height attributes
//   - "blit: surface copied" from Clone, CopyFrom and self-blits
//   - "blit: source clipped" when a blit extends past the destination
//
// Drawing and pixel access never log.
//
// Example:
//
//	blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a discarding logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
