package main

import (
	"fmt"

	"github.com/phrazzld/scry-studycards/internal/app"
	"github.com/spf13/cobra"
)

func newModelsCmd(root *rootOptions) *cobra.Command {
	var preferred string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Print the candidate models in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load(cmd.ErrOrStderr())
			if err != nil {
				return reportError(cmd, err)
			}

			policy := app.CandidatePolicy(cfg.LLM)
			if preferred != "" {
				policy = policy.WithPreferred(preferred)
			}

			candidates, dropped := policy.Resolve()
			for _, id := range dropped {
				log.Warn("skipping incompatible model", "model", id)
			}
			for _, id := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&preferred, "model", "m", "", "preview the list with this preferred model")
	return cmd
}
