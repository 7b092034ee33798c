package mocks

import (
	"context"

	"github.com/phrazzld/scry-studycards/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, subject string) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
