package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxStudyCards is the upper bound on the number of cards returned for one document.
const MaxStudyCards = 10

// Study card validation errors
var (
	// ErrStudyCardTitleEmpty is returned when a card has a blank title.
	ErrStudyCardTitleEmpty = errors.New("study card title cannot be empty")

	// ErrStudyCardContentEmpty is returned when a card has blank content.
	ErrStudyCardContentEmpty = errors.New("study card content cannot be empty")

	// ErrStudyCardEmojiEmpty is returned when a card has a blank emoji tag.
	ErrStudyCardEmojiEmpty = errors.New("study card emoji cannot be empty")

	// ErrStudyCardPageInvalid is returned when a page hint is present but not positive.
	ErrStudyCardPageInvalid = errors.New("study card page number must be positive")
)

// StudyCard is one structured unit of study material derived from a document.
//
// Content holds newline-separated paragraphs and may contain **strong** and
// __underline__ emphasis spans. PageNumber is an approximate source page hint
// and is nil when the model could not estimate it.
type StudyCard struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Emoji      string `json:"emoji"`
	PageNumber *int   `json:"pageNumber,omitempty"`
}

// NewStudyCard creates a StudyCard and validates it.
// A pageNumber of zero means the page is unknown.
func NewStudyCard(title, content, emoji string, pageNumber int) (*StudyCard, error) {
	card := &StudyCard{
		Title:   title,
		Content: content,
		Emoji:   emoji,
	}
	if pageNumber != 0 {
		card.PageNumber = &pageNumber
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks that the card satisfies the study card invariants.
func (c *StudyCard) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrStudyCardTitleEmpty
	}

	if strings.TrimSpace(c.Content) == "" {
		return ErrStudyCardContentEmpty
	}

	if strings.TrimSpace(c.Emoji) == "" {
		return ErrStudyCardEmojiEmpty
	}

	if c.PageNumber != nil && *c.PageNumber < 1 {
		return fmt.Errorf("%w: got %d", ErrStudyCardPageInvalid, *c.PageNumber)
	}

	return nil
}

// Paragraphs splits the card content on newlines and drops blank lines.
func (c *StudyCard) Paragraphs() []string {
	lines := strings.Split(c.Content, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// Page returns the page hint and whether one is present.
func (c *StudyCard) Page() (int, bool) {
	if c.PageNumber == nil {
		return 0, false
	}
	return *c.PageNumber, true
}
