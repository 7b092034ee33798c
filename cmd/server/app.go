package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-studycards/internal/app"
	"github.com/phrazzld/scry-studycards/internal/config"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	deps   *app.App
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	deps, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to wire dependencies: %w", err)
	}

	return &application{
		config: cfg,
		logger: logger,
		deps:   deps,
	}, nil
}
