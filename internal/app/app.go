// Package app assembles the study card pipeline from configuration.
// Both the HTTP server and the CLI build their dependencies here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/extract"
	"github.com/phrazzld/scry-studycards/internal/generation"
	"github.com/phrazzld/scry-studycards/internal/platform/gemini"
	"github.com/phrazzld/scry-studycards/internal/service"
	"github.com/phrazzld/scry-studycards/internal/service/auth"
)

// App holds the wired application dependencies.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Policy    generation.CandidatePolicy
	Extractor extract.Extractor

	// Generator is nil when no API credential is configured; the service
	// then reports a configuration error for each run.
	Generator generation.Generator
	Service   service.StudyCardService

	// Tokens is nil when bearer authentication is disabled.
	Tokens auth.TokenService
}

// CandidatePolicy builds the model candidate policy from the LLM settings.
// The incompatibility filter is always applied.
func CandidatePolicy(cfg config.LLMConfig) generation.CandidatePolicy {
	policy := generation.DefaultCandidatePolicy()
	if len(cfg.Models) > 0 {
		policy.Models = append([]string(nil), cfg.Models...)
	}
	return policy.WithPreferred(cfg.PreferredModel)
}

// New wires extraction, generation, the study card service and, when a
// secret is configured, the token service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		Policy: CandidatePolicy(cfg.LLM),
	}

	var err error
	a.Extractor, err = extract.New(cfg.Extract.Backend, cfg.Extract.MaxPages, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize extractor: %w", err)
	}

	a.Generator, err = newGenerator(ctx, cfg.LLM, a.Policy, logger)
	if err != nil {
		return nil, err
	}

	a.Service, err = service.NewStudyCardService(a.Extractor, a.Generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize study card service: %w", err)
	}

	if cfg.Auth.AuthEnabled() {
		a.Tokens, err = auth.NewTokenService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize token service: %w", err)
		}
		logger.Info("bearer authentication enabled", "token_lifetime", cfg.Auth.TokenLifetime)
	}

	return a, nil
}

func newGenerator(
	ctx context.Context,
	cfg config.LLMConfig,
	policy generation.CandidatePolicy,
	logger *slog.Logger,
) (generation.Generator, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.Warn("GEMINI_API_KEY is not set; study card generation will fail until it is configured")
		return nil, nil
	}

	var prompt *generation.PromptBuilder
	if cfg.PromptTemplatePath != "" {
		var err error
		if prompt, err = generation.LoadPromptBuilder(cfg.PromptTemplatePath); err != nil {
			return nil, fmt.Errorf("failed to load prompt template: %w", err)
		}
	}

	client, err := gemini.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	generator, err := generation.NewCardGenerator(client, generation.Options{
		Policy:         policy,
		AttemptTimeout: cfg.AttemptTimeout,
		Prompt:         prompt,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card generator: %w", err)
	}

	logger.Info("card generator initialized", "candidates", candidatesOf(policy))
	return generator, nil
}

func candidatesOf(policy generation.CandidatePolicy) []string {
	candidates, _ := policy.Resolve()
	return candidates
}
