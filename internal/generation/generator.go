package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/scry-studycards/internal/domain"
)

// ModelClient is the outbound port to a generative-text API.
// Implementations must be safe for concurrent use.
type ModelClient interface {
	// GenerateText sends prompt to the named model and returns the reply text.
	//
	// Failures reported by the remote API should be returned as (or wrap) a
	// *StatusError so the fallback caller can classify them.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// StatusError is a failure reported by the generation API with an HTTP-like status code.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("generation API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("generation API error %d: %s", e.StatusCode, e.Message)
}

// Class is the fallback-relevant classification of a model call failure.
type Class string

// Failure classes.
const (
	ClassNotFound  Class = "not_found"
	ClassAuth      Class = "auth"
	ClassRateLimit Class = "rate_limit"
	ClassUnknown   Class = "unknown"
)

// Classify maps a model call failure to its Class.
// Only *StatusError values carry a status; everything else is ClassUnknown.
func Classify(err error) Class {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return ClassUnknown
	}

	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return ClassNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ClassAuth
	case http.StatusTooManyRequests:
		return ClassRateLimit
	default:
		return ClassUnknown
	}
}

// rawMessage extracts the most specific upstream message from err.
func rawMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return err.Error()
}

// Request is the input to a single generation run.
type Request struct {
	// Text is the raw extracted document text.
	Text string
	// PageCount is the number of pages reported by the extractor, 0 when unknown.
	PageCount int
	// PreferredModel overrides the configured preferred model for this run.
	PreferredModel string
}

// Result is the successful outcome of a generation run.
type Result struct {
	Cards    []domain.StudyCard
	Model    string
	Attempts []Attempt
	Windowed bool
}

// Generator defines the interface for generating study cards from document text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateCards creates study cards from the provided document text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - req: The document text and per-run options
	//
	// Returns:
	//   - A Result holding between 1 and domain.MaxStudyCards cards in model order
	//   - An *Error if generation fails for any reason (see errors.go for kinds)
	GenerateCards(ctx context.Context, req Request) (*Result, error)
}

// Attempt records one call to one candidate model.
type Attempt struct {
	Model    string
	Outcome  Outcome
	Class    Class
	Err      error
	Duration time.Duration
}

// Outcome is the terminal state of a single Attempt.
type Outcome string

// Attempt outcomes.
const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)
