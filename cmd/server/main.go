// Package main implements the entry point for the study card API server,
// which turns uploaded PDF documents into study cards with Gemini models.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves until ctx is done.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("extract_backend", cfg.Extract.Backend),
		slog.Bool("api_key_present", cfg.LLM.GeminiAPIKey != ""),
		slog.Bool("auth_enabled", cfg.Auth.AuthEnabled()))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.serve(ctx)
}
