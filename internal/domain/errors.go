package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyDocument is returned when a document payload has no bytes.
	ErrEmptyDocument = errors.New("document cannot be empty")

	// ErrUnsupportedDocument is returned when a payload is not a supported document type.
	ErrUnsupportedDocument = errors.New("unsupported document type")

	// ErrDocumentTooLarge is returned when a payload exceeds the configured size limit.
	ErrDocumentTooLarge = errors.New("document exceeds size limit")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
