package extract

import "errors"

var (
	// ErrEmptyPayload is returned when the document has no bytes.
	ErrEmptyPayload = errors.New("document payload is empty")

	// ErrCorrupt is returned when the document cannot be parsed.
	ErrCorrupt = errors.New("document is corrupt or unreadable")

	// ErrUnknownBackend is returned by New for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown extraction backend")
)
