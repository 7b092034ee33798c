package api

import (
	"net/http"

	"github.com/phrazzld/scry-studycards/internal/api/shared"
	"github.com/phrazzld/scry-studycards/internal/generation"
)

// SystemHandler serves the health check and the candidate model listing.
type SystemHandler struct {
	policy generation.CandidatePolicy
}

// NewSystemHandler creates a SystemHandler reporting the given candidate policy.
func NewSystemHandler(policy generation.CandidatePolicy) *SystemHandler {
	return &SystemHandler{policy: policy}
}

// Health handles GET /health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// Models handles GET /api/models requests. The optional "model" query
// parameter previews the list with a preferred model applied.
func (h *SystemHandler) Models(w http.ResponseWriter, r *http.Request) {
	policy := h.policy
	if preferred := r.URL.Query().Get("model"); preferred != "" {
		policy = policy.WithPreferred(preferred)
	}

	candidates, _ := policy.Resolve()
	if candidates == nil {
		candidates = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ModelsResponse{Models: candidates})
}
