package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text page by page with a pure Go PDF reader.
type PDFExtractor struct {
	maxPages int
	logger   *slog.Logger
}

var _ Extractor = (*PDFExtractor)(nil)

// NewPDFExtractor creates a PDFExtractor. maxPages of 0 reads every page.
func NewPDFExtractor(maxPages int, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{
		maxPages: maxPages,
		logger:   logger.With("component", "pdf_extractor"),
	}
}

// Extract implements Extractor.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (doc *Document, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// the reader panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrCorrupt, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	total := r.NumPage()
	pages := total
	if e.maxPages > 0 && pages > e.maxPages {
		e.logger.InfoContext(ctx, "limiting pages read",
			"pages", total,
			"max_pages", e.maxPages)
		pages = e.maxPages
	}

	var sb strings.Builder
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)
		if p.V.IsNull() || p.V.Key("Contents").IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; ok {
				continue
			}
			f := p.Font(name)
			fonts[name] = &f
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrCorrupt, i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	e.logger.DebugContext(ctx, "extracted PDF text",
		"pages", total,
		"text_length", sb.Len())

	return &Document{Text: sb.String(), Pages: total}, nil
}
