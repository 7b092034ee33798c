// Package generation turns extracted document text into a bounded, validated
// list of study cards by calling an external generative-text API.
//
// The pipeline stages live here as small, independently testable pieces:
//   - WindowText bounds the document text to a fixed rune budget (head + tail).
//   - PromptBuilder renders the windowed text into the instruction template.
//   - CandidatePolicy resolves the ordered list of model identifiers to try.
//   - FallbackCaller tries each candidate model until one succeeds, advancing
//     only on not-found failures.
//   - ParseCards recovers a JSON array from the free-form reply and validates
//     each element against the card schema.
//
// The Generator interface composes these stages. Concrete model access is
// provided through the ModelClient port (see internal/platform/gemini).
// Every failure is reported as an *Error carrying a Kind from the taxonomy
// in errors.go.
package generation
