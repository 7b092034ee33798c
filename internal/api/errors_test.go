package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration", generation.MissingCredentialError(), http.StatusServiceUnavailable},
		{"input", generation.CorruptDocumentError(nil), http.StatusUnprocessableEntity},
		{"rate limit", generation.NewError(generation.KindRateLimit, "", nil), http.StatusTooManyRequests},
		{"auth", generation.NewError(generation.KindAuth, "", nil), http.StatusBadGateway},
		{"response format", generation.NewError(generation.KindResponseFormat, "", nil), http.StatusBadGateway},
		{"wrapped generation error", fmt.Errorf("run: %w", generation.NoTextError(nil)), http.StatusUnprocessableEntity},
		{"empty document", domain.ErrEmptyDocument, http.StatusBadRequest},
		{"too large", fmt.Errorf("%w: 11MB", domain.ErrDocumentTooLarge), http.StatusRequestEntityTooLarge},
		{"unsupported", domain.ErrUnsupportedDocument, http.StatusUnsupportedMediaType},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("password=hunter2")))
	assert.Equal(t, "Only PDF files are supported.", GetSafeErrorMessage(domain.ErrUnsupportedDocument))

	genErr := generation.NewError(generation.KindAuth, "The generation API key is invalid.", errors.New("raw upstream detail"))
	assert.Equal(t, "The generation API key is invalid.", GetSafeErrorMessage(genErr))
}
