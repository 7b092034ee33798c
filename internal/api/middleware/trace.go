package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
)

// TraceMiddleware adds a trace ID and a trace-scoped logger to the request
// context, and echoes the trace ID in the X-Trace-ID response header.
// Apply it early so every later handler logs with the trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithContext(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
