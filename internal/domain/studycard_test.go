package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudyCard(t *testing.T) {
	t.Parallel()

	card, err := NewStudyCard("Mitosis", "Cells divide.\nTwo daughter cells form.", "🧬", 3)
	require.NoError(t, err)

	assert.Equal(t, "Mitosis", card.Title)
	page, ok := card.Page()
	assert.True(t, ok)
	assert.Equal(t, 3, page)

	card, err = NewStudyCard("Mitosis", "Cells divide.", "🧬", 0)
	require.NoError(t, err)
	assert.Nil(t, card.PageNumber, "zero page should mean unknown")
}

func TestStudyCardValidate(t *testing.T) {
	t.Parallel()

	negative := -2
	tests := []struct {
		name    string
		card    StudyCard
		wantErr error
	}{
		{
			name:    "blank title",
			card:    StudyCard{Title: "  ", Content: "x", Emoji: "🙂"},
			wantErr: ErrStudyCardTitleEmpty,
		},
		{
			name:    "blank content",
			card:    StudyCard{Title: "A", Content: "\n", Emoji: "🙂"},
			wantErr: ErrStudyCardContentEmpty,
		},
		{
			name:    "missing emoji",
			card:    StudyCard{Title: "A", Content: "x"},
			wantErr: ErrStudyCardEmojiEmpty,
		},
		{
			name:    "negative page",
			card:    StudyCard{Title: "A", Content: "x", Emoji: "🙂", PageNumber: &negative},
			wantErr: ErrStudyCardPageInvalid,
		},
		{
			name: "valid without page",
			card: StudyCard{Title: "A", Content: "x", Emoji: "🙂"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.card.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestStudyCardParagraphs(t *testing.T) {
	t.Parallel()

	card := StudyCard{Content: "First **term** here.\n\n  Second __phrase__ here.  \n"}
	assert.Equal(t, []string{"First **term** here.", "Second __phrase__ here."}, card.Paragraphs())
}

func TestStudyCardJSONOmitsMissingPage(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(StudyCard{Title: "A", Content: "x", Emoji: "🙂"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"A","content":"x","emoji":"🙂"}`, string(data))
}
