// Package logging defines a minimal structured-logging interface used across
// the project, with slog (text) and zap (json) implementations.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "method", method, "path", path)
type Logger interface {
	// Debug logs diagnostic details, off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds the logger selected by format: "json" yields a zap JSON logger,
// anything else a slog text logger. Output goes to w.
func New(format, level string, w io.Writer) (Logger, error) {
	if strings.EqualFold(format, FormatJSON) {
		return NewZapLogger(level, w)
	}
	return NewTextLogger(level, w), nil
}
