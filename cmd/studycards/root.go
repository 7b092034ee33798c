package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/generation"
	"github.com/phrazzld/scry-studycards/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configDir string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "studycards",
		Short:         "Generate study cards from PDF documents",
		Long:          "studycards extracts the text of a PDF and asks a Gemini model to turn it into 5 to 10 study cards.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".",
		"directory holding .env.local, .env and config.yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newModelsCmd(opts),
		newTokenCmd(opts),
	)
	return cmd
}

// load reads the configuration and builds a JSON logger on stderr.
// Without --verbose only warnings and errors are logged.
func (o *rootOptions) load(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFrom(o.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := slog.LevelWarn
	if o.verbose {
		level, _ = logger.ParseLevel(cfg.Server.LogLevel)
		if level > slog.LevelInfo {
			level = slog.LevelInfo
		}
	}

	return cfg, slog.New(logger.NewHandler(stderr, level)), nil
}

// reportError prints the user-facing message for err and returns err so the
// command exits non-zero.
func reportError(cmd *cobra.Command, err error) error {
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "error (%s): %s\n", genErr.Kind, genErr.UserMessage())
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}
