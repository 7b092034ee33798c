package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
	"github.com/phrazzld/scry-studycards/internal/service/auth"
)

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the token subject to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"Authorization header required", auth.ErrMissingToken)
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || strings.TrimSpace(token) == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
			}
			return
		}

		ctx := shared.SetSubject(r.Context(), claims.Subject)
		log := logger.FromContextOrDefault(ctx, nil).With("subject", claims.Subject)
		ctx = logger.WithContext(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
