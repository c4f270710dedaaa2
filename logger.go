package taxa

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with registry-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRegistry tags every record with the registry id and label.
func (l *Logger) WithRegistry(id, label string) *Logger {
	return &Logger{
		Logger: l.Logger.With("registry", id, "registry_label", label),
	}
}

// LogMutation logs an add, create, remove or clear operation.
// Gate rejections are logged at warn level, other failures at error level.
func (l *Logger) LogMutation(op string, t *Taxon, err error) {
	args := []any{"op", op}
	if t != nil {
		args = append(args, "taxon", t.ID(), "label", t.Label())
	}
	switch {
	case err == nil:
		l.Debug("registry mutation completed", args...)
	case isLocked(err):
		l.Warn("registry mutation rejected", append(args, "error", err)...)
	default:
		l.Error("registry mutation failed", append(args, "error", err)...)
	}
}

// LogGate logs a lock state transition.
func (l *Logger) LogGate(locked bool) {
	l.Debug("registry gate changed", "locked", locked)
}
