// Package export renders generated study cards as JSON documents or XLSX workbooks.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/domain"
)

// Format is an output encoding for a card set.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Document is the JSON shape of an exported card set.
type Document struct {
	Model string             `json:"model"`
	Cards []domain.StudyCard `json:"cards"`
}

// Write encodes cards in format f to w.
func Write(w io.Writer, f Format, model string, cards []domain.StudyCard) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, model, cards)
	case FormatXLSX:
		data, err := XLSX(model, cards)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteJSON writes cards as an indented JSON Document.
func WriteJSON(w io.Writer, model string, cards []domain.StudyCard) error {
	if cards == nil {
		cards = []domain.StudyCard{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Document{Model: model, Cards: cards}); err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	return nil
}
