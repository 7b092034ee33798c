package generation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/scry-studycards/internal/domain"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// minCardsRequested is the lower bound on cards asked of the model.
const minCardsRequested = 5

// ErrEmptyDocumentText is returned when a prompt is requested for blank text.
var ErrEmptyDocumentText = errors.New("document text cannot be empty")

// promptData is the data passed to the prompt template.
type promptData struct {
	DocumentText string
	PageCount    int
	MinCards     int
	MaxCards     int
}

// PromptBuilder renders document text into the model instruction prompt.
// A PromptBuilder is immutable and safe for concurrent use.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses templateText. An empty templateText selects the
// built-in template.
func NewPromptBuilder(templateText string) (*PromptBuilder, error) {
	if strings.TrimSpace(templateText) == "" {
		templateText = defaultPromptTemplate
	}

	tmpl, err := template.New("studycards").Option("missingkey=error").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrConfiguration, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// LoadPromptBuilder reads a template file from path. An empty path selects
// the built-in template.
func LoadPromptBuilder(path string) (*PromptBuilder, error) {
	if path == "" {
		return NewPromptBuilder("")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template %s: %v", ErrConfiguration, path, err)
	}

	return NewPromptBuilder(string(content))
}

// Build renders the prompt for text. pageCount is included when positive.
// The same inputs always produce the same prompt.
func (b *PromptBuilder) Build(text string, pageCount int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocumentText
	}

	data := promptData{
		DocumentText: text,
		PageCount:    pageCount,
		MinCards:     minCardsRequested,
		MaxCards:     domain.MaxStudyCards,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
