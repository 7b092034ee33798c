// Package testutils provides shared helpers for tests across the application:
// PDF fixtures, multipart upload requests, a fake Gemini endpoint, and
// environment isolation.
package testutils
