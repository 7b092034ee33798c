package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateCardsFn allows test cases to mock the GenerateCards behavior
	GenerateCardsFn func(ctx context.Context, req generation.Request) (*generation.Result, error)

	// Default response values
	Result *generation.Result
	Err    error

	// Call tracking for verification
	GenerateCardsCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateCards was called
		Count int

		// Requests contains all requests passed to GenerateCards calls
		Requests []generation.Request
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateCards implements the generation.Generator interface
func (m *MockGenerator) GenerateCards(ctx context.Context, req generation.Request) (*generation.Result, error) {
	m.GenerateCardsCalls.mu.Lock()
	m.GenerateCardsCalls.Count++
	m.GenerateCardsCalls.Requests = append(m.GenerateCardsCalls.Requests, req)
	m.GenerateCardsCalls.mu.Unlock()

	if m.GenerateCardsFn != nil {
		return m.GenerateCardsFn(ctx, req)
	}

	return m.Result, m.Err
}

// CallCount returns the number of GenerateCards calls so far.
func (m *MockGenerator) CallCount() int {
	m.GenerateCardsCalls.mu.Lock()
	defer m.GenerateCardsCalls.mu.Unlock()
	return m.GenerateCardsCalls.Count
}

// NewMockGeneratorWithCards creates a MockGenerator that returns the specified cards
func NewMockGeneratorWithCards(model string, cards []domain.StudyCard) *MockGenerator {
	return &MockGenerator{
		Result: &generation.Result{Cards: cards, Model: model},
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// NewMockGeneratorWithDefaultCards creates a MockGenerator with sample cards
func NewMockGeneratorWithDefaultCards() *MockGenerator {
	page := 2
	return NewMockGeneratorWithCards("gemini-2.5-flash", []domain.StudyCard{
		{
			Title:   "Osmosis",
			Content: "**Osmosis** is the movement of water across a membrane.\nIt runs __from low to high__ solute concentration.",
			Emoji:   "💧",
		},
		{
			Title:      "Diffusion",
			Content:    "**Diffusion** spreads particles from high to low concentration.\nIt needs no energy input.",
			Emoji:      "🌫️",
			PageNumber: &page,
		},
	})
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCardsCalls.mu.Lock()
	defer m.GenerateCardsCalls.mu.Unlock()

	m.GenerateCardsCalls.Count = 0
	m.GenerateCardsCalls.Requests = nil
}
