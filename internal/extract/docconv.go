package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"code.sajari.com/docconv"
)

// DocconvExtractor extracts text with docconv. It needs the converter
// binaries docconv shells out to (pdftotext for PDF) on the PATH.
type DocconvExtractor struct {
	logger *slog.Logger
}

var _ Extractor = (*DocconvExtractor)(nil)

// NewDocconvExtractor creates a DocconvExtractor.
func NewDocconvExtractor(logger *slog.Logger) *DocconvExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocconvExtractor{logger: logger.With("component", "docconv_extractor")}
}

// Extract implements Extractor. The page count is not reported.
func (e *DocconvExtractor) Extract(ctx context.Context, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mimeType := http.DetectContentType(data)
	res, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "extracted document text",
		"mime_type", mimeType,
		"text_length", len(res.Body))

	return &Document{Text: res.Body}, nil
}
