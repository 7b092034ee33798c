// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package.
//
// Setup configures a JSON logger from the server configuration and installs
// it as the slog default. Request-scoped loggers travel in a context.Context
// via WithContext and FromContextOrDefault. Attributes named "error" are
// passed through the redact package so API keys and local paths never reach
// the log stream.
package logger
