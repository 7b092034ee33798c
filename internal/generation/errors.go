package generation

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure into a user-facing error category.
type Kind string

// Error categories surfaced to callers of the study card pipeline.
const (
	KindConfiguration   Kind = "configuration"
	KindInput           Kind = "input"
	KindAuth            Kind = "auth"
	KindRateLimit       Kind = "rate_limit"
	KindModelsExhausted Kind = "all_models_exhausted"
	KindUpstream        Kind = "unknown"
	KindResponseFormat  Kind = "response_format"
	KindEmptyResult     Kind = "empty_result"
)

// Sentinel errors, one per Kind. Use errors.Is against these to branch on
// the category of an *Error.
var (
	// ErrConfiguration is returned when the generator is missing required settings
	// such as the API credential.
	ErrConfiguration = errors.New("generator configuration error")

	// ErrInput is returned when the document is empty, corrupt, or has no extractable text.
	ErrInput = errors.New("invalid input document")

	// ErrAuth is returned when the generation API rejects the credential.
	ErrAuth = errors.New("generation API authentication failed")

	// ErrRateLimit is returned when the generation API quota is exceeded.
	ErrRateLimit = errors.New("generation API rate limit exceeded")

	// ErrModelsExhausted is returned when every candidate model reported not-found.
	ErrModelsExhausted = errors.New("all candidate models unavailable")

	// ErrUpstream is returned for any other generation API failure.
	ErrUpstream = errors.New("generation API call failed")

	// ErrResponseFormat is returned when the model reply cannot be parsed as a card array.
	ErrResponseFormat = errors.New("invalid response from language model")

	// ErrEmptyResult is returned when the model reply parses to an empty array.
	ErrEmptyResult = errors.New("no cards generated")
)

var kindSentinels = map[Kind]error{
	KindConfiguration:   ErrConfiguration,
	KindInput:           ErrInput,
	KindAuth:            ErrAuth,
	KindRateLimit:       ErrRateLimit,
	KindModelsExhausted: ErrModelsExhausted,
	KindUpstream:        ErrUpstream,
	KindResponseFormat:  ErrResponseFormat,
	KindEmptyResult:     ErrEmptyResult,
}

// Error is the single failure type returned by the pipeline. Message is
// human-readable and safe to show to the end user verbatim; Cause holds the
// underlying error for logs.
type Error struct {
	Kind    Kind
	Message string
	Model   string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// UserMessage returns the message intended for display to the end user.
func (e *Error) UserMessage() string {
	return e.Message
}

// NewError creates an *Error of the given kind.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the Kind carried by err, or KindUpstream when err is not an *Error.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindUpstream
}

// UserMessage returns the user-facing message for err.
// Errors that did not originate in this package get a generic message.
func UserMessage(err error) string {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.UserMessage()
	}
	return "An unexpected error occurred while generating study cards."
}

// Messages shown to the user for each failure.
const (
	msgMissingCredential = "The generation API key is not configured. Set GEMINI_API_KEY (for example in .env.local)."
	msgNoCandidates      = "No generation model is configured."
	msgEmptyDocument     = "The uploaded document is empty."
	msgCorruptDocument   = "The document could not be read. The file may be corrupt or in an unsupported format."
	msgNoText            = "No text could be extracted from the document. It may consist only of images."
	msgAuth              = "The generation API key is invalid. Check GEMINI_API_KEY."
	msgRateLimit         = "The generation API request limit was exceeded. Please try again later."
	msgExhausted         = "Every candidate generation model was unavailable. Check the API key and the available models."
	msgUnparsable        = "The AI response could not be parsed."
	msgNoValidCards      = "The AI response did not contain any valid study cards."
	msgEmptyResult       = "No study cards were generated."
)

// MissingCredentialError builds the configuration error for an absent API key.
func MissingCredentialError() *Error {
	return NewError(KindConfiguration, msgMissingCredential, nil)
}

// EmptyDocumentError builds the input error for a zero-length payload.
func EmptyDocumentError(cause error) *Error {
	return NewError(KindInput, msgEmptyDocument, cause)
}

// CorruptDocumentError builds the input error for an unreadable payload.
func CorruptDocumentError(cause error) *Error {
	return NewError(KindInput, msgCorruptDocument, cause)
}

// NoTextError builds the input error for a document with no text.
func NoTextError(cause error) *Error {
	return NewError(KindInput, msgNoText, cause)
}
