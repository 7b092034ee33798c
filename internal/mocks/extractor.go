package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-studycards/internal/extract"
)

// MockExtractor implements extract.Extractor for testing
type MockExtractor struct {
	// ExtractFn allows test cases to mock the Extract behavior
	ExtractFn func(ctx context.Context, data []byte) (*extract.Document, error)

	// Default response values
	Document *extract.Document
	Err      error

	mu    sync.Mutex
	calls int
}

var _ extract.Extractor = (*MockExtractor)(nil)

// Extract implements the extract.Extractor interface
func (m *MockExtractor) Extract(ctx context.Context, data []byte) (*extract.Document, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, data)
	}
	return m.Document, m.Err
}

// CallCount returns the number of Extract calls so far.
func (m *MockExtractor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// NewMockExtractorWithText creates a MockExtractor that returns text with the given page count
func NewMockExtractorWithText(text string, pages int) *MockExtractor {
	return &MockExtractor{Document: &extract.Document{Text: text, Pages: pages}}
}
