package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/mocks"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
	"github.com/phrazzld/scry-studycards/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedSubject string
	}{
		{
			name:            "valid token",
			authHeader:      "Bearer valid-token",
			claims:          &auth.Claims{Subject: "study-app"},
			expectedStatus:  http.StatusOK,
			expectedSubject: "study-app",
		},
		{
			name:           "missing auth header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unexpected validation failure",
			authHeader:     "Bearer some-token",
			validateErr:    errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenService := &mocks.MockTokenService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			var capturedSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedSubject, _ = shared.GetSubject(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/studycards", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			NewAuthMiddleware(tokenService).Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedSubject, capturedSubject)
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	buf, log := logger.SetupTestLogger(t)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContextOrDefault(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	TraceMiddleware(log)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, traceID, 32)
	assert.Equal(t, traceID, rr.Header().Get(shared.TraceIDHeader))

	entries := buf.FindEntries("inside handler")
	require.Len(t, entries, 1)
	assert.Equal(t, traceID, entries[0]["trace_id"])
}
