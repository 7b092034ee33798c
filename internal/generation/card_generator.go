package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Options configures a CardGenerator. Zero values select defaults.
type Options struct {
	Policy         CandidatePolicy
	WindowBudget   int
	AttemptTimeout time.Duration
	Prompt         *PromptBuilder
}

// CardGenerator is the Generator implementation that composes windowing,
// prompt rendering, model fallback, and response parsing.
// It holds no per-run state and is safe for concurrent use.
type CardGenerator struct {
	policy       CandidatePolicy
	windowBudget int
	prompt       *PromptBuilder
	caller       *FallbackCaller
	parser       *ResponseParser
	logger       *slog.Logger
}

var _ Generator = (*CardGenerator)(nil)

// NewCardGenerator creates a CardGenerator backed by client.
// A nil client is reported as a configuration error.
func NewCardGenerator(client ModelClient, opts Options, logger *slog.Logger) (*CardGenerator, error) {
	if client == nil {
		return nil, MissingCredentialError()
	}
	if logger == nil {
		logger = slog.Default()
	}

	prompt := opts.Prompt
	if prompt == nil {
		var err error
		if prompt, err = NewPromptBuilder(""); err != nil {
			return nil, err
		}
	}

	policy := opts.Policy
	if len(policy.Models) == 0 && len(policy.Incompatible) == 0 {
		policy = DefaultCandidatePolicy().WithPreferred(policy.Preferred)
	}

	budget := opts.WindowBudget
	if budget <= 0 {
		budget = DefaultWindowBudget
	}

	return &CardGenerator{
		policy:       policy,
		windowBudget: budget,
		prompt:       prompt,
		caller:       NewFallbackCaller(client, opts.AttemptTimeout, logger),
		parser:       NewResponseParser(logger),
		logger:       logger.With("component", "card_generator"),
	}, nil
}

// Candidates returns the effective candidate list for an optional
// per-run preferred model, logging any identifiers removed by the
// incompatibility filter.
func (g *CardGenerator) Candidates(ctx context.Context, preferred string) []string {
	policy := g.policy
	if strings.TrimSpace(preferred) != "" {
		policy = policy.WithPreferred(preferred)
	}

	candidates, dropped := policy.Resolve()
	for _, id := range dropped {
		g.logger.WarnContext(ctx, "skipping incompatible model",
			"model", id,
			"replacement", firstOrEmpty(candidates))
	}
	return candidates
}

// GenerateCards implements Generator.
func (g *CardGenerator) GenerateCards(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, NoTextError(ErrEmptyDocumentText)
	}

	text, windowed := WindowText(req.Text, g.windowBudget)
	if windowed {
		g.logger.InfoContext(ctx, "document text windowed",
			"original_length", len(req.Text),
			"windowed_length", len(text))
	}

	prompt, err := g.prompt.Build(text, req.PageCount)
	if err != nil {
		if errors.Is(err, ErrEmptyDocumentText) {
			return nil, NoTextError(err)
		}
		return nil, NewError(KindConfiguration, "The prompt template could not be rendered.", err)
	}

	candidates := g.Candidates(ctx, req.PreferredModel)
	if len(candidates) == 0 {
		return nil, NewError(KindConfiguration, msgNoCandidates, nil)
	}
	g.logger.InfoContext(ctx, "generating study cards",
		"candidates", candidates,
		"prompt_length", len(prompt))

	call, err := g.caller.Call(ctx, candidates, prompt)
	if err != nil {
		return nil, err
	}

	cards, err := g.parser.Parse(ctx, call.Text)
	if err != nil {
		var genErr *Error
		if errors.As(err, &genErr) {
			genErr.Model = call.Model
		}
		return nil, err
	}

	g.logger.InfoContext(ctx, "study cards generated",
		"model", call.Model,
		"card_count", len(cards),
		"attempts", len(call.Attempts))

	return &Result{
		Cards:    cards,
		Model:    call.Model,
		Attempts: call.Attempts,
		Windowed: windowed,
	}, nil
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
