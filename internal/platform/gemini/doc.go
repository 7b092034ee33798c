// Package gemini provides an implementation of the generation.ModelClient
// port that uses Google's Gemini API through the google.golang.org/genai SDK.
//
// This package is an infrastructure adapter: it sends a prompt to a named
// model and returns the reply text. Model selection, fallback, and response
// parsing belong to the generation package. API failures are translated to
// *generation.StatusError so the fallback caller can classify them by status
// code (404 not found, 401/403 auth, 429 rate limit).
package gemini
