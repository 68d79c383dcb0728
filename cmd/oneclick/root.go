package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFiles []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "oneclick",
		Short:        "One-click unsubscribe service",
		Long:         `oneclick verifies signed HS256 unsubscribe links and records the addresses that opted out.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", nil, "env files to load (default ./.env when present)")

	cmd.AddCommand(newServeCmd(flags), newInspectCmd(flags))
	return cmd
}
