// Package config handles configuration loading, parsing, and validation
// from various sources (dotenv files, an optional config.yaml, environment
// variables). Environment variables use the STUDYCARDS_ prefix; the API key
// and preferred model can also be given as GEMINI_API_KEY and GEMINI_MODEL.
package config
