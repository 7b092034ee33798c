package generation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_Build(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("")
	require.NoError(t, err)

	t.Run("embeds the text and the card rules", func(t *testing.T) {
		t.Parallel()

		prompt, err := builder.Build("Photosynthesis converts light into chemical energy.", 0)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Photosynthesis converts light into chemical energy."))
		for _, want := range []string{"JSON array", "title", "content", "emoji", "pageNumber", "**word**", "__phrase__", "5 to 10"} {
			assert.Contains(t, prompt, want)
		}
		assert.NotContains(t, prompt, "pages, so pageNumber")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := builder.Build("same text", 3)
		require.NoError(t, err)
		second, err := builder.Build("same text", 3)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("states the page count when known", func(t *testing.T) {
		t.Parallel()

		prompt, err := builder.Build("text", 12)
		require.NoError(t, err)
		assert.Contains(t, prompt, "The document has 12 pages")
	})

	t.Run("does not escape document text", func(t *testing.T) {
		t.Parallel()

		prompt, err := builder.Build(`A <b> & "quoted" 'text'`, 0)
		require.NoError(t, err)
		assert.Contains(t, prompt, `A <b> & "quoted" 'text'`)
	})

	t.Run("rejects blank text", func(t *testing.T) {
		t.Parallel()

		_, err := builder.Build("  \n\t", 0)
		assert.ErrorIs(t, err, ErrEmptyDocumentText)
	})
}

func TestLoadPromptBuilder(t *testing.T) {
	t.Parallel()

	t.Run("custom template file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prompt.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("cards {{.MinCards}}-{{.MaxCards}}: {{.DocumentText}}"), 0o600))

		builder, err := LoadPromptBuilder(path)
		require.NoError(t, err)

		prompt, err := builder.Build("hello", 0)
		require.NoError(t, err)
		assert.Equal(t, "cards 5-10: hello", prompt)
	})

	t.Run("missing file is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadPromptBuilder(filepath.Join(t.TempDir(), "missing.tmpl"))
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("invalid template is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := NewPromptBuilder("{{.DocumentText")
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}
