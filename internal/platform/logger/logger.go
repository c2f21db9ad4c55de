// Package logger builds the process-wide structured logger. One JSON object
// per line on stdout; severity filtering happens at the handler so calls
// below the threshold are dropped without side effects.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"profiled/pkg/requestcontext"
)

// New returns a JSON slog.Logger filtered to the given minimum severity.
func New(minLevel string) *slog.Logger {
	return NewWithWriter(os.Stdout, minLevel)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(w io.Writer, minLevel string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(minLevel),
	}))
}

// ParseLevel maps a case-insensitive severity name to a slog level.
// Unrecognized values default to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTrace returns a child logger carrying the request's trace id, so every
// record emitted during the request is correlatable. Loggers are cheap; a new
// child per request is fine.
func WithTrace(ctx context.Context, log *slog.Logger) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	if traceID := requestcontext.TraceID(ctx); traceID != "" {
		return log.With("trace_id", traceID)
	}
	return log
}
