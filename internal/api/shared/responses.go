package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-studycards/internal/platform/logger"
	"github.com/phrazzld/scry-studycards/internal/redact"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Code    int    `json:"-"`
	TraceID string `json:"trace_id,omitempty"`
}

// ResponseOption customizes RespondWithErrorAndLog.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	kind            string
}

// WithElevatedLogLevel logs 4xx responses at WARN instead of DEBUG.
func WithElevatedLogLevel() ResponseOption {
	return func(o *responseOptions) { o.elevateLogLevel = true }
}

// WithKind reports the failure category to the client in ErrorResponse.Kind.
func WithKind(kind string) ResponseOption {
	return func(o *responseOptions) { o.kind = kind }
}

// RespondWithJSON writes data as a JSON body with the given status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).
			ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an ErrorResponse carrying message and the request
// trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes an ErrorResponse with userMessage and logs err
// in redacted form. 5xx responses log at ERROR, 429 at WARN, other 4xx at
// DEBUG unless WithElevatedLogLevel is given.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	var o responseOptions
	for _, opt := range opts {
		opt(&o)
	}

	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if o.kind != "" {
		attrs = append(attrs, slog.String("kind", o.kind))
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logger.FromContextOrDefault(r.Context(), nil).
		LogAttrs(r.Context(), errorLogLevel(status, o.elevateLogLevel), "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Kind:    o.kind,
		Code:    status,
		TraceID: GetTraceID(r.Context()),
	})
}

func errorLogLevel(status int, elevated bool) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case elevated && status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}
