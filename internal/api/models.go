package api

import (
	"github.com/phrazzld/scry-studycards/internal/domain"
)

// GenerateRequest holds the optional form fields of a generation request.
type GenerateRequest struct {
	// Model is a preferred model identifier tried before the configured list.
	Model string `validate:"omitempty,max=100,excludesall= /?#"`

	// Format selects the response encoding: json (default) or xlsx.
	Format string `validate:"omitempty,oneof=json xlsx JSON XLSX"`
}

// StudyCardResponse is the JSON shape of a single card.
type StudyCardResponse struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Emoji      string `json:"emoji"`
	PageNumber *int   `json:"pageNumber,omitempty"`
}

// GenerateResponse defines the successful response of the generation endpoint.
type GenerateResponse struct {
	Cards []StudyCardResponse `json:"cards"`
	Model string              `json:"model"`
	RunID string              `json:"run_id,omitempty"`
}

// ModelsResponse lists the effective candidate models in attempt order.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// HealthResponse defines the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

func cardsToResponse(cards []domain.StudyCard) []StudyCardResponse {
	out := make([]StudyCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, StudyCardResponse{
			Title:      c.Title,
			Content:    c.Content,
			Emoji:      c.Emoji,
			PageNumber: c.PageNumber,
		})
	}
	return out
}
