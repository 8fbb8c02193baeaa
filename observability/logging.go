// Package observability provides structured logging with trace
// correlation for the mapping layer and its callers.
package observability

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Logger is a structured logger with automatic trace correlation.
// It wraps slog.Logger and stamps every entry with the component name;
// when the context carries an OpenTelemetry span, trace and span ids
// are attached as well.
type Logger struct {
	logger          *slog.Logger
	component       string
	redactSensitive bool
}

// NewLogger creates a Logger writing through the given handler.
// Sensitive values (passwords, credentials) are redacted at info level
// and above.
func NewLogger(handler slog.Handler, component string) *Logger {
	return &Logger{
		logger:          slog.New(handler),
		component:       component,
		redactSensitive: true,
	}
}

// Debug logs a debug-level message. Debug entries are not redacted.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.withContext(ctx).Debug(msg, args...)
}

// Info logs an info-level message with sensitive values redacted.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.redactSensitive {
		args = redactSensitiveData(args)
	}
	l.withContext(ctx).Info(msg, args...)
}

// Warn logs a warning-level message with sensitive values redacted.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.redactSensitive {
		args = redactSensitiveData(args)
	}
	l.withContext(ctx).Warn(msg, args...)
}

// Error logs an error-level message with sensitive values redacted.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.redactSensitive {
		args = redactSensitiveData(args)
	}
	l.withContext(ctx).Error(msg, args...)
}

// Slog exposes the underlying slog.Logger for APIs that accept one.
func (l *Logger) Slog() *slog.Logger {
	return l.logger.With(slog.String("component", l.component))
}

func (l *Logger) withContext(ctx context.Context) *slog.Logger {
	logger := l.logger.With(slog.String("component", l.component))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		spanCtx := span.SpanContext()
		logger = logger.With(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}

	return logger
}

// NewJSONHandler creates a JSON log handler at the given level.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// NewTextHandler creates a text log handler at the given level.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// ParseLevel maps a configuration level string to a slog.Level.
// Unknown strings fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// redactSensitiveData redacts credential-bearing fields in log
// arguments, replacing their values with "[REDACTED]".
func redactSensitiveData(args []any) []any {
	if len(args)%2 != 0 {
		return args
	}

	sensitiveFields := map[string]bool{
		"password":   true,
		"credential": true,
		"secret":     true,
		"token":      true,
		"apikey":     true,
	}

	redacted := make([]any, len(args))
	copy(redacted, args)

	for i := 0; i < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			normalizedKey := strings.ToLower(strings.ReplaceAll(key, "_", ""))
			if sensitiveFields[normalizedKey] {
				redacted[i+1] = "[REDACTED]"
			}
		}
	}

	return redacted
}
