package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/app"
	"github.com/phrazzld/scry-studycards/internal/domain"
	"github.com/phrazzld/scry-studycards/internal/export"
	"github.com/phrazzld/scry-studycards/internal/service"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	format string
	out    string
	model  string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <file.pdf>",
		Short: "Generate study cards from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runGenerate(cmd, root, opts, args[0]); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatJSON), "output format: json or xlsx")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (json defaults to stdout, xlsx to <input>.xlsx)")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "preferred model identifier, tried first")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, path string) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg, log, err := root.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	data, err := readDocument(path, cfg.Server.MaxUploadBytes)
	if err != nil {
		return err
	}

	deps, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	set, err := deps.Service.GenerateFromDocument(cmd.Context(), data, service.GenerateOptions{
		PreferredModel: opts.model,
	})
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" && format == export.FormatXLSX {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + format.Extension()
	}
	if out == "" {
		return export.Write(cmd.OutOrStdout(), format, set.Model, set.Cards)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, set.Model, set.Cards); err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d cards from %s to %s\n", len(set.Cards), set.Model, out)
	return nil
}

// readDocument reads a PDF from disk applying the same guards as the HTTP API.
func readDocument(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := io.Reader(f)
	if maxBytes > 0 {
		reader = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, path)
	case maxBytes > 0 && int64(len(data)) > maxBytes:
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrDocumentTooLarge, path, maxBytes)
	case http.DetectContentType(data) != "application/pdf":
		return nil, fmt.Errorf("%w: %s is not a PDF", domain.ErrUnsupportedDocument, path)
	}
	return data, nil
}
