// Package auth issues and validates the bearer tokens that guard the
// study card API when a signing secret is configured.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
)

// minSecretLength is the shortest accepted HMAC signing secret.
const minSecretLength = 32

// TokenService issues and validates API access tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the named client.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates tokenString and returns its claims.
	// It returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an access token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService using HMAC-SHA256 signing.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newTokenService(cfg, time.Now)
}

func newTokenService(cfg config.AuthConfig, now func() time.Time) (*hmacTokenService, error) {
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, ErrWeakSecret
	}

	lifetime := cfg.TokenLifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: lifetime,
		timeFunc:      now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// GenerateToken implements TokenService.
func (s *hmacTokenService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("token subject cannot be empty")
	}

	now := s.timeFunc()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		ID:        uuid.New().String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContextOrDefault(ctx, nil).Error("failed to sign access token",
			"error", err,
			"subject", subject)
		return "", fmt.Errorf("failed to sign access token with HMAC-SHA256: %w", err)
	}

	return signed, nil
}

// ValidateToken implements TokenService.
func (s *hmacTokenService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContextOrDefault(ctx, nil)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "error", err)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	result := &Claims{
		Subject: claims.Subject,
		ID:      claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
