package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/phrazzld/scry-studycards/internal/generation"
)

// ModelReply is a scripted reply for one model identifier.
type ModelReply struct {
	Text string
	Err  error
}

// MockModelClient implements generation.ModelClient for testing
type MockModelClient struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, model, prompt string) (string, error)

	// Replies maps model identifiers to scripted replies.
	// Models absent from Replies fail with a 404 StatusError.
	Replies map[string]ModelReply

	mu      sync.Mutex
	models  []string
	prompts []string
}

var _ generation.ModelClient = (*MockModelClient)(nil)

// GenerateText implements the generation.ModelClient interface
func (m *MockModelClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.models = append(m.models, model)
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, model, prompt)
	}

	reply, ok := m.Replies[model]
	if !ok {
		return "", NotFoundError(model)
	}
	return reply.Text, reply.Err
}

// Models returns the model identifiers called, in call order.
func (m *MockModelClient) Models() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.models...)
}

// Prompts returns the prompts sent, in call order.
func (m *MockModelClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// CallCount returns the number of GenerateText calls so far.
func (m *MockModelClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.models)
}

// NewMockModelClientWithReply creates a MockModelClient where every model returns text.
func NewMockModelClientWithReply(text string) *MockModelClient {
	return &MockModelClient{
		GenerateTextFn: func(context.Context, string, string) (string, error) {
			return text, nil
		},
	}
}

// NotFoundError builds the StatusError the generation API returns for an unknown model.
func NotFoundError(model string) *generation.StatusError {
	return &generation.StatusError{
		StatusCode: http.StatusNotFound,
		Status:     "NOT_FOUND",
		Message:    "models/" + model + " is not found for API version v1beta",
	}
}

// StatusError builds a StatusError with the given code and message.
func StatusError(code int, message string) *generation.StatusError {
	return &generation.StatusError{StatusCode: code, Message: message}
}
