package kets

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kets-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes key=value records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithWidth adds a width (ket dimension) field to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithRank adds a rank (number of kets) field to the logger.
func (l *Logger) WithRank(rank int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rank", rank),
	}
}

// WithName adds a blob name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogOrthonormalize logs a Gram-Schmidt run. Callers attach the basis
// shape with WithRank and WithWidth.
func (l *Logger) LogOrthonormalize(ctx context.Context, workers int, elapsed time.Duration) {
	l.DebugContext(ctx, "orthonormalize completed",
		"workers", workers,
		"elapsed", elapsed,
	)
}

// LogCompress logs a lossless to compact conversion.
func (l *Logger) LogCompress(ctx context.Context, elapsed time.Duration) {
	l.DebugContext(ctx, "lossy compress completed", "elapsed", elapsed)
}

// LogSave logs a basis save operation. Callers attach the blob name with
// WithName.
func (l *Logger) LogSave(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed", "error", err)
		return
	}
	l.DebugContext(ctx, "basis saved", "bytes", size)
}

// LogLoad logs a basis load operation.
func (l *Logger) LogLoad(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed", "error", err)
		return
	}
	l.DebugContext(ctx, "basis loaded")
}
