// Package logging provides the slog setup shared by the commands.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with helpers for the spectrum and formula tools.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// New picks the handler by format ("text" or "json") and the level by
// name. Verbose forces debug level.
func New(w io.Writer, format, level string, verbose bool) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", level, err)
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// WithCommand tags records with the running command.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{Logger: l.Logger.With("cmd", name)}
}

// LogStep logs one processing step on a signal.
func (l *Logger) LogStep(ctx context.Context, step string, points int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"step", step,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "step completed",
		"step", step,
		"points", points,
		"took", took,
	)
}

// LogFormulas logs a formula search.
func (l *Logger) LogFormulas(ctx context.Context, mz float64, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "formula search failed",
			"mz", mz,
			"error", err,
		)
		return
	}
	if found == 0 {
		l.WarnContext(ctx, "no formula matches", "mz", mz)
		return
	}
	l.InfoContext(ctx, "formula search completed",
		"mz", mz,
		"found", found,
	)
}
