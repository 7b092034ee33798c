package shared

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// SubjectContextKey is the context key for the authenticated token subject
	SubjectContextKey ContextKey = "subject"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader is the response header that echoes the trace ID
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetSubject stores the authenticated subject in the context.
func SetSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectContextKey, subject)
}

// GetSubject returns the authenticated subject and whether one is present.
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectContextKey).(string)
	return subject, ok && subject != ""
}

// generateTraceID returns a random UUID as 32 hex characters.
// If the random source fails, a time-ordered UUID is used instead.
func generateTraceID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		slog.Error("failed to generate random trace ID",
			"error", err,
			"fallback", "uuid v7")
		id = uuid.Must(uuid.NewV7())
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
