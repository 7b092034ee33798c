package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakeGemini is an httptest server speaking the generateContent endpoint of
// the Gemini API. Models without a scripted reply answer 404 NOT_FOUND.
type FakeGemini struct {
	*httptest.Server

	mu      sync.Mutex
	replies map[string]string
	models  []string
}

// NewFakeGemini starts a FakeGemini with replies keyed by model identifier.
// The key "*" answers for any model.
func NewFakeGemini(t *testing.T, replies map[string]string) *FakeGemini {
	t.Helper()

	f := &FakeGemini{replies: replies}
	f.Server = CreateTestServer(t, http.HandlerFunc(f.serve))
	return f
}

// Models returns the model identifiers requested so far, in order.
func (f *FakeGemini) Models() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.models...)
}

func (f *FakeGemini) serve(w http.ResponseWriter, r *http.Request) {
	// path: /<version>/models/<model>:generateContent
	model := r.URL.Path
	if i := strings.LastIndex(model, "/models/"); i >= 0 {
		model = model[i+len("/models/"):]
	}
	model = strings.TrimSuffix(model, ":generateContent")

	f.mu.Lock()
	f.models = append(f.models, model)
	reply, ok := f.replies[model]
	if !ok {
		reply, ok = f.replies["*"]
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{
			"code":    http.StatusNotFound,
			"message": "models/" + model + " is not found for API version v1beta",
			"status":  "NOT_FOUND",
		}})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{map[string]any{
			"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": reply}}},
			"finishReason": "STOP",
		}},
	})
}
