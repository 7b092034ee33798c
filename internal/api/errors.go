package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case generation.KindConfiguration:
			return http.StatusServiceUnavailable
		case generation.KindInput:
			return http.StatusUnprocessableEntity
		case generation.KindRateLimit:
			return http.StatusTooManyRequests
		default:
			// auth, exhausted, upstream, response format and empty result
			// are all failures of the generation backend
			return http.StatusBadGateway
		}
	}

	switch {
	case errors.Is(err, domain.ErrEmptyDocument),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var genErr *generation.Error
	if errors.As(err, &genErr) {
		return genErr.UserMessage()
	}

	switch {
	case errors.Is(err, domain.ErrEmptyDocument):
		return "The uploaded file is empty."
	case errors.Is(err, domain.ErrDocumentTooLarge):
		return "The uploaded file is too large."
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return "Only PDF files are supported."
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, context.DeadlineExceeded):
		return "The request took too long to complete."
	default:
		return "An unexpected error occurred"
	}
}

// errorKind returns the client-visible failure category of err, or "" when
// err did not come from the generation pipeline.
func errorKind(err error) string {
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		return string(genErr.Kind)
	}
	return ""
}

// HandleAPIError writes the sanitized error response for err and logs the details.
// A non-empty message overrides the default safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	opts := []shared.ResponseOption{}
	if kind := errorKind(err); kind != "" {
		opts = append(opts, shared.WithKind(kind))
	}
	if status == http.StatusUnsupportedMediaType || status == http.StatusRequestEntityTooLarge {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
