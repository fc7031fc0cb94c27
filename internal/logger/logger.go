package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const opIDKey ctxKey = "opID"

// InitLogger installs the default slog logger writing to stderr.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stderr)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level on the default logger.
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs at error level on the default logger.
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}

// Debug logs at debug level on the default logger.
func Debug(msg string, args ...any) {
	slog.Default().Debug(msg, args...)
}

// GenerateOpID creates a new UUID identifying one batch operation.
func GenerateOpID() string {
	return uuid.NewString()
}

// WithOpID returns a new context containing the operation ID.
func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

// OpIDFromContext extracts the operation ID from the context, if present.
func OpIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(opIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetOpID returns the operation ID or an empty string.
func GetOpID(ctx context.Context) string {
	id, _ := OpIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the op_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := OpIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyOpID, id)
	}
	return slog.Default()
}
