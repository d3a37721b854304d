// SPDX-License-Identifier: MIT

// Package diag is the diagnostic channel shared by vector and matrix.
//
// Every bounds or shape condition detected by the public packages is written
// here as a structured record before the caller sees the returned error or
// sentinel value. The default sink is a text handler on os.Stderr.
package diag

import (
	"context"
	"log/slog"
	"os"
)

// Attribute keys used by Report callers. Kept here so records stay greppable.
const (
	KeyOp    = "op"
	KeyIndex = "index"
	KeyRow   = "row"
	KeyCol   = "col"
	KeySize  = "size"
	KeyRows  = "rows"
	KeyCols  = "cols"
)

// Logger wraps slog.Logger with the package-local reporting helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// Wrap adopts an existing slog.Logger. A nil logger yields the default sink.
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Default()
	}

	return &Logger{Logger: l}
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

var std = NewLogger(nil)

// Default returns the process-wide stderr logger.
func Default() *Logger { return std }

// Report emits msg at error level with the given attributes.
// A nil receiver falls back to Default so zero-value owners still report.
func (l *Logger) Report(msg string, args ...any) {
	if l == nil {
		l = std
	}
	l.Log(context.Background(), slog.LevelError, msg, args...)
}
