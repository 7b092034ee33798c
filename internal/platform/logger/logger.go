package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/redact"
)

type contextKey struct{}

// ParseLevel maps a configured level name to a slog.Level.
// Unknown names map to info and report false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output writer.
func SetupWithWriter(cfg config.ServerConfig, w io.Writer) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.LogLevel)

	logger := slog.New(NewHandler(w, level))
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	return logger, nil
}

// NewHandler returns the JSON handler used by the application.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactErrors,
	})
}

// redactErrors scrubs values logged under the "error" key.
func redactErrors(_ []string, a slog.Attr) slog.Attr {
	if a.Key != "error" {
		return a
	}
	switch v := a.Value.Any().(type) {
	case error:
		return slog.String(a.Key, redact.Error(v))
	case string:
		return slog.String(a.Key, redact.String(v))
	default:
		return a
	}
}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, if any.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(*slog.Logger)
	return logger, ok && logger != nil
}

// FromContextOrDefault returns the logger stored in ctx, falling back to
// fallback and then to slog.Default().
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
