package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/oneclick/pkg/jwt"
)

type inspectOutput struct {
	Valid   bool       `json:"valid"`
	Reason  jwt.Reason `json:"reason,omitempty"`
	Header  jwt.Header `json:"header,omitempty"`
	Claims  jwt.Claims `json:"claims,omitempty"`
	Preview jwt.Claims `json:"unverified_claims"`
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Verify a token and print its claims as JSON",
		Long: `inspect verifies a token with UNSUBSCRIBE_TOKEN_SECRET and prints the verdict
together with the unverified claims. With --no-verify only the unverified
claims are printed and no secret is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			out := inspectOutput{Preview: jwt.DecodeUnsafe(token)}

			if !noVerify {
				cfg, err := loadConfig(flags.envFiles)
				if err != nil {
					return err
				}
				res := jwt.Verify(token, []byte(cfg.TokenSecret))
				out.Valid = res.Valid
				out.Reason = res.Reason
				out.Header = res.Header
				out.Claims = res.Claims
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
			if !noVerify && !out.Valid {
				return fmt.Errorf("token rejected: %w", out.Reason.Err())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip verification and print unverified claims only")
	return cmd
}
