package extract_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/scry-studycards/internal/extract"
	"github.com/phrazzld/scry-studycards/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPDFExtractor_Extract(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("extracts text from every page", func(t *testing.T) {
		t.Parallel()

		data := testutils.MinimalPDF("Mitochondria produce energy", "Ribosomes build proteins")
		doc, err := extract.NewPDFExtractor(0, discardLogger()).Extract(ctx, data)
		require.NoError(t, err)

		assert.Equal(t, 2, doc.Pages)
		assert.Contains(t, doc.Text, "Mitochondria produce energy")
		assert.Contains(t, doc.Text, "Ribosomes build proteins")
	})

	t.Run("max pages bounds the pages read", func(t *testing.T) {
		t.Parallel()

		data := testutils.MinimalPDF("first page", "second page", "third page")
		doc, err := extract.NewPDFExtractor(1, discardLogger()).Extract(ctx, data)
		require.NoError(t, err)

		assert.Equal(t, 3, doc.Pages)
		assert.Contains(t, doc.Text, "first page")
		assert.NotContains(t, doc.Text, "second page")
	})

	t.Run("pages without content yield empty text", func(t *testing.T) {
		t.Parallel()

		doc, err := extract.NewPDFExtractor(0, discardLogger()).Extract(ctx, testutils.MinimalPDF("", ""))
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Pages)
		assert.Empty(t, doc.Text)
	})

	t.Run("garbage is corrupt", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewPDFExtractor(0, discardLogger()).Extract(ctx, []byte("this is not a pdf document at all"))
		assert.ErrorIs(t, err, extract.ErrCorrupt)
	})

	t.Run("truncated pdf is corrupt", func(t *testing.T) {
		t.Parallel()

		data := testutils.MinimalPDF("some text")
		_, err := extract.NewPDFExtractor(0, discardLogger()).Extract(ctx, data[:len(data)/2])
		assert.ErrorIs(t, err, extract.ErrCorrupt)
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewPDFExtractor(0, discardLogger()).Extract(ctx, nil)
		assert.ErrorIs(t, err, extract.ErrEmptyPayload)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := extract.NewPDFExtractor(0, discardLogger()).Extract(cctx, testutils.MinimalPDF("text"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		backend string
		want    any
		wantErr error
	}{
		{backend: "", want: &extract.PDFExtractor{}},
		{backend: extract.BackendPDF, want: &extract.PDFExtractor{}},
		{backend: extract.BackendDocconv, want: &extract.DocconvExtractor{}},
		{backend: "ocr", wantErr: extract.ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			t.Parallel()

			got, err := extract.New(tt.backend, 0, discardLogger())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestDocconvExtractor_EmptyPayload(t *testing.T) {
	t.Parallel()

	_, err := extract.NewDocconvExtractor(discardLogger()).Extract(context.Background(), []byte{})
	assert.ErrorIs(t, err, extract.ErrEmptyPayload)
}
