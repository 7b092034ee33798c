// Package domain contains the core entities of the study card service:
// the StudyCard value produced for a document and the document-level
// validation errors shared by the HTTP and CLI surfaces. It is independent
// of any specific infrastructure or delivery mechanism.
package domain
