// Package service contains the application use cases.
//
// StudyCardService runs the document-to-cards pipeline: it guards the
// payload, extracts text through an extract.Extractor, and hands the text
// to a generation.Generator. Both the HTTP API and the CLI call into it,
// so the presentation layers never see extraction or model details.
//
// Every failure returned by the service is a *generation.Error whose Kind
// the callers map to their own surface (HTTP status, exit code).
package service
