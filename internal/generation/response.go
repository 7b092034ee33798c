package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/domain"
)

// ResponseParser turns a free-form model reply into validated study cards.
type ResponseParser struct {
	logger *slog.Logger
}

// NewResponseParser creates a ResponseParser.
func NewResponseParser(logger *slog.Logger) *ResponseParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResponseParser{logger: logger.With("component", "response_parser")}
}

// Parse recovers the card array from reply, validates each element, and
// returns at most domain.MaxStudyCards cards in reply order.
//
// Elements that fail validation are dropped. The result is never empty:
// an empty array yields an EmptyResult error and an array whose elements are
// all invalid yields a ResponseFormat error.
func (p *ResponseParser) Parse(ctx context.Context, reply string) ([]domain.StudyCard, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, NewError(KindResponseFormat, msgUnparsable, errors.New("empty reply"))
	}

	elements, err := recoverElements(reply)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, NewError(KindEmptyResult, msgEmptyResult, nil)
	}

	schema, err := cardSchema()
	if err != nil {
		return nil, NewError(KindResponseFormat, msgUnparsable, err)
	}

	cards := make([]domain.StudyCard, 0, min(len(elements), domain.MaxStudyCards))
	for i, raw := range elements {
		if len(cards) == domain.MaxStudyCards {
			p.logger.InfoContext(ctx, "truncating card list",
				"received", len(elements),
				"kept", domain.MaxStudyCards)
			break
		}

		card, err := p.parseElement(ctx, i, raw)
		if err != nil {
			p.logger.WarnContext(ctx, "dropping invalid card",
				"index", i,
				"error", err)
			continue
		}
		if err := schema.Validate(card.fields); err != nil {
			p.logger.WarnContext(ctx, "dropping invalid card",
				"index", i,
				"error", err)
			continue
		}
		cards = append(cards, card.toDomain())
	}

	if len(cards) == 0 {
		return nil, NewError(KindResponseFormat, msgNoValidCards,
			fmt.Errorf("all %d elements failed validation", len(elements)))
	}

	return cards, nil
}

// recoverElements runs the bracket scanner and maps its outcome to elements or an *Error.
func recoverElements(reply string) ([]json.RawMessage, error) {
	result := ExtractArray(reply)
	switch result.Outcome {
	case ScanParsed:
		return result.Elements, nil
	case ScanMalformed:
		return nil, NewError(KindResponseFormat, msgUnparsable,
			errors.New("no bracketed span parses as a JSON array"))
	}

	// No '[' anywhere: the reply itself must be an array.
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &elements); err != nil {
		return nil, NewError(KindResponseFormat, msgUnparsable, fmt.Errorf("reply is not a JSON array: %w", err))
	}
	return elements, nil
}

// cardFields is a decoded, normalised card element ready for schema validation.
type cardFields struct {
	fields map[string]any
}

// parseElement decodes one array element and normalises its fields.
func (p *ResponseParser) parseElement(ctx context.Context, index int, raw json.RawMessage) (*cardFields, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("element is not an object: %w", err)
	}
	if fields == nil {
		return nil, errors.New("element is null")
	}

	for _, key := range []string{"title", "content", "emoji"} {
		if s, ok := fields[key].(string); ok {
			fields[key] = strings.TrimSpace(s)
		}
	}

	if v, ok := fields["pageNumber"]; ok {
		page, valid := normalizePage(v)
		if valid {
			fields["pageNumber"] = float64(page)
		} else {
			if v != nil {
				p.logger.DebugContext(ctx, "discarding unusable page hint",
					"index", index,
					"value", v)
			}
			delete(fields, "pageNumber")
		}
	}

	return &cardFields{fields: fields}, nil
}

// normalizePage coerces a decoded pageNumber value to a positive integer.
// Numeric strings are accepted; fractional, non-positive, and non-numeric
// values are rejected.
func normalizePage(v any) (int, bool) {
	switch page := v.(type) {
	case float64:
		if page < 1 || page > math.MaxInt32 || page != math.Trunc(page) {
			return 0, false
		}
		return int(page), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(page))
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// toDomain converts validated fields into a domain.StudyCard.
func (c *cardFields) toDomain() domain.StudyCard {
	card := domain.StudyCard{
		Title:   c.fields["title"].(string),
		Content: c.fields["content"].(string),
		Emoji:   c.fields["emoji"].(string),
	}
	if page, ok := c.fields["pageNumber"].(float64); ok {
		n := int(page)
		card.PageNumber = &n
	}
	return card
}
