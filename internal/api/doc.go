// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts multipart document uploads to the study
// card service and maps pipeline failures to HTTP status codes.
package api
