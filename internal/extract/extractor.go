package extract

import (
	"context"
	"fmt"
	"log/slog"
)

// Backend names accepted by New.
const (
	BackendPDF     = "pdf"
	BackendDocconv = "docconv"
)

// Document is the text extracted from a payload.
type Document struct {
	// Text is the concatenated plain text of the document.
	Text string
	// Pages is the number of pages, or 0 when the backend cannot tell.
	Pages int
}

// Extractor turns a binary document into text.
//
// Extract returns an error wrapping ErrCorrupt when the payload cannot be
// parsed. A readable document without text is not an error: it yields a
// Document with empty Text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (*Document, error)
}

// New returns the Extractor for backend. maxPages bounds the pages read by
// the PDF backend; 0 means no limit.
func New(backend string, maxPages int, logger *slog.Logger) (Extractor, error) {
	switch backend {
	case "", BackendPDF:
		return NewPDFExtractor(maxPages, logger), nil
	case BackendDocconv:
		return NewDocconvExtractor(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
