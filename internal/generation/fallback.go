package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-studycards/internal/redact"
)

// DefaultAttemptTimeout bounds a single model call.
const DefaultAttemptTimeout = 60 * time.Second

// CallResult is the outcome of a successful fallback run.
type CallResult struct {
	Text     string
	Model    string
	Attempts []Attempt
}

// FallbackCaller tries candidate models in order until one succeeds.
// Only not-found failures advance to the next candidate.
type FallbackCaller struct {
	client         ModelClient
	attemptTimeout time.Duration
	logger         *slog.Logger
}

// NewFallbackCaller creates a FallbackCaller. A non-positive attemptTimeout
// selects DefaultAttemptTimeout.
func NewFallbackCaller(client ModelClient, attemptTimeout time.Duration, logger *slog.Logger) *FallbackCaller {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackCaller{
		client:         client,
		attemptTimeout: attemptTimeout,
		logger:         logger.With("component", "fallback_caller"),
	}
}

// step is the next action after an attempt.
type step int

const (
	stepSucceed step = iota
	stepNextModel
	stepAbort
)

// transition decides what follows a completed attempt.
func transition(a Attempt) step {
	if a.Outcome == OutcomeSucceeded {
		return stepSucceed
	}
	if a.Class == ClassNotFound {
		return stepNextModel
	}
	return stepAbort
}

// Call sends prompt to each candidate in order, making exactly one call per
// attempted model. It returns the first successful reply or an *Error.
func (c *FallbackCaller) Call(ctx context.Context, candidates []string, prompt string) (*CallResult, error) {
	if len(candidates) == 0 {
		return nil, NewError(KindConfiguration, msgNoCandidates, nil)
	}

	attempts := make([]Attempt, 0, len(candidates))
	for _, model := range candidates {
		if ctx.Err() != nil {
			c.logger.InfoContext(ctx, "generation stopped before calling model", "model", model)
			return nil, context.Cause(ctx)
		}

		attempt, text := c.attempt(ctx, model, prompt)
		attempts = append(attempts, attempt)
		if attempt.Outcome == OutcomeFailed && ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}

		switch transition(attempt) {
		case stepSucceed:
			return &CallResult{Text: text, Model: model, Attempts: attempts}, nil
		case stepNextModel:
			c.logger.WarnContext(ctx, "model not found, trying next candidate",
				"model", model,
				"error", redact.Error(attempt.Err))
			continue
		default:
			return nil, failureFor(attempt)
		}
	}

	last := attempts[len(attempts)-1]
	return nil, &Error{
		Kind:    KindModelsExhausted,
		Message: fmt.Sprintf("%s Last error: %s", msgExhausted, rawMessage(last.Err)),
		Model:   last.Model,
		Cause:   last.Err,
	}
}

// attempt performs one bounded call to model.
func (c *FallbackCaller) attempt(ctx context.Context, model, prompt string) (Attempt, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	start := time.Now()
	c.logger.DebugContext(ctx, "calling model", "model", model, "prompt_length", len(prompt))

	text, err := c.client.GenerateText(attemptCtx, model, prompt)
	a := Attempt{Model: model, Duration: time.Since(start)}
	if err == nil {
		a.Outcome = OutcomeSucceeded
		c.logger.InfoContext(ctx, "model call succeeded",
			"model", model,
			"duration_ms", a.Duration.Milliseconds(),
			"response_length", len(text))
		return a, text
	}

	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		err = fmt.Errorf("model call timed out after %s: %w", c.attemptTimeout, err)
	}

	a.Outcome = OutcomeFailed
	a.Err = err
	a.Class = Classify(err)
	c.logger.InfoContext(ctx, "model call failed",
		"model", model,
		"class", string(a.Class),
		"duration_ms", a.Duration.Milliseconds(),
		"error", redact.Error(err))
	return a, ""
}

// failureFor maps a terminal failed attempt to an *Error.
func failureFor(a Attempt) *Error {
	switch a.Class {
	case ClassAuth:
		return &Error{Kind: KindAuth, Message: msgAuth, Model: a.Model, Cause: a.Err}
	case ClassRateLimit:
		return &Error{Kind: KindRateLimit, Message: msgRateLimit, Model: a.Model, Cause: a.Err}
	default:
		return &Error{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("Generation API call failed: %s (model: %s)", rawMessage(a.Err), a.Model),
			Model:   a.Model,
			Cause:   a.Err,
		}
	}
}
