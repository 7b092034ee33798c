package auth

import "errors"

// Token errors. ValidateToken wraps one of these around the parser error.
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken is returned by the middleware when no bearer token is sent.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWeakSecret is returned by NewTokenService for secrets under 32 bytes.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
