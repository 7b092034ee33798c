package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("upstream said no")
	err := &Error{Kind: KindRateLimit, Message: msgRateLimit, Model: "m", Cause: cause}

	assert.ErrorIs(t, err, ErrRateLimit)
	assert.NotErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, msgRateLimit, err.UserMessage())
	assert.Contains(t, err.Error(), "rate_limit")
	assert.Contains(t, err.Error(), "upstream said no")

	wrapped := fmt.Errorf("service: %w", err)
	assert.ErrorIs(t, wrapped, ErrRateLimit)
	assert.Equal(t, KindRateLimit, KindOf(wrapped))
	assert.Equal(t, msgRateLimit, UserMessage(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.NotEmpty(t, UserMessage(err))
}

func TestInputErrors(t *testing.T) {
	t.Parallel()

	for _, err := range []*Error{EmptyDocumentError(nil), CorruptDocumentError(errors.New("bad xref")), NoTextError(nil)} {
		assert.ErrorIs(t, err, ErrInput)
		assert.Equal(t, KindInput, err.Kind)
		assert.NotEmpty(t, err.UserMessage())
	}
	assert.ErrorIs(t, MissingCredentialError(), ErrConfiguration)
}
