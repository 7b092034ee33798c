package generation

import "strings"

// IncompatibleModel is a model identifier known not to work with this
// pipeline. It is always removed from the candidate list.
const IncompatibleModel = "gemini-1.5-flash"

// DefaultModels returns the default ranked list of candidate models.
func DefaultModels() []string {
	return []string{"gemini-2.5-flash", "gemini-1.5-pro", "gemini-pro"}
}

// CandidatePolicy decides which models are tried and in what order.
type CandidatePolicy struct {
	// Models is the ranked list of candidates. Empty selects DefaultModels.
	Models []string
	// Preferred, when set, is promoted to the front of the list.
	Preferred string
	// Incompatible lists identifiers that are never tried.
	Incompatible []string
}

// DefaultCandidatePolicy returns the policy with the default model list and
// the built-in incompatibility filter.
func DefaultCandidatePolicy() CandidatePolicy {
	return CandidatePolicy{
		Models:       DefaultModels(),
		Incompatible: []string{IncompatibleModel},
	}
}

// WithPreferred returns a copy of p with the preferred model replaced.
func (p CandidatePolicy) WithPreferred(model string) CandidatePolicy {
	p.Preferred = model
	return p
}

// Resolve returns the ordered, de-duplicated candidate list and the
// identifiers that were removed by the incompatibility filter.
// The preferred model, if any and compatible, is always first.
func (p CandidatePolicy) Resolve() (candidates []string, dropped []string) {
	models := p.Models
	if len(models) == 0 {
		models = DefaultModels()
	}

	incompatible := make(map[string]struct{}, len(p.Incompatible))
	for _, id := range p.Incompatible {
		incompatible[strings.TrimSpace(id)] = struct{}{}
	}

	ordered := make([]string, 0, len(models)+1)
	if preferred := strings.TrimSpace(p.Preferred); preferred != "" {
		ordered = append(ordered, preferred)
	}
	ordered = append(ordered, models...)

	seen := make(map[string]struct{}, len(ordered))
	for _, raw := range ordered {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := incompatible[id]; ok {
			dropped = append(dropped, id)
			continue
		}
		candidates = append(candidates, id)
	}

	return candidates, dropped
}
