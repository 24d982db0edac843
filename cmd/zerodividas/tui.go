package main

import (
	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface",
		Long:  `Browse the home summary, accounts ledger and statistics in a full-screen terminal interface.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			return tui.Run(s)
		},
	}
}
