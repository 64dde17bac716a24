package bitvec

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with consistent field names for persistence
// operations on bit vectors.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
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

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))
}

// WithName adds a vector name field.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithStore adds a backend field, e.g. "memory" or "s3".
func (l *Logger) WithStore(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", kind),
	}
}

// LogSave logs a save of a vector of bits bits encoded to size bytes.
func (l *Logger) LogSave(ctx context.Context, name string, bits, size int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"bits", bits,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "save completed",
		"name", name,
		"bits", bits,
		"bytes", size,
		"elapsed", elapsed,
	)
}

// LogLoad logs a load. bits is zero when the load failed.
func (l *Logger) LogLoad(ctx context.Context, name string, bits int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "load completed",
		"name", name,
		"bits", bits,
		"elapsed", elapsed,
	)
}

// LogDelete logs a delete.
func (l *Logger) LogDelete(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "delete failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "delete completed",
		"name", name,
	)
}

// LogBatch logs a batch operation (op is "save" or "load").
func (l *Logger) LogBatch(ctx context.Context, op string, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"op", op,
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
		return
	}
	l.InfoContext(ctx, "batch completed",
		"op", op,
		"count", count,
	)
}
