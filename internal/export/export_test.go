package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleCards() []domain.StudyCard {
	page := 3
	return []domain.StudyCard{
		{Title: "Osmosis", Content: "**Water** moves.\nAcross a membrane.", Emoji: "💧", PageNumber: &page},
		{Title: "ATP", Content: "Energy <currency> & more", Emoji: "⚡"},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" XLSX ", FormatXLSX, false},
		{"csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, ".xlsx", FormatXLSX.Extension())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, "gemini-pro", sampleCards()))

	assert.Contains(t, buf.String(), "Energy <currency> & more", "HTML is not escaped")

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "gemini-pro", doc.Model)
	assert.Equal(t, sampleCards(), doc.Cards)
}

func TestWriteJSON_NoCards(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "m", nil))
	assert.JSONEq(t, `{"model":"m","cards":[]}`, buf.String())
}

func TestXLSX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, "gemini-pro", sampleCards()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"1", "💧", "Osmosis", "**Water** moves.\nAcross a membrane.", "3", "gemini-pro"}, rows[1])
	assert.Equal(t, "ATP", rows[2][2])
	assert.Empty(t, rows[2][4], "missing page stays blank")
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, Format("pdf"), "m", nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
