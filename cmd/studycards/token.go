package main

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-studycards/internal/service/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue a bearer token for the HTTP API",
		Long:  "token signs an access token with auth.jwt_secret for clients of a server running with authentication enabled.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.load(cmd.ErrOrStderr())
			if err != nil {
				return reportError(cmd, err)
			}
			if !cfg.Auth.AuthEnabled() {
				return reportError(cmd, errors.New("auth.jwt_secret is not configured"))
			}

			tokens, err := auth.NewTokenService(cfg.Auth)
			if err != nil {
				return reportError(cmd, err)
			}
			token, err := tokens.GenerateToken(cmd.Context(), args[0])
			if err != nil {
				return reportError(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
