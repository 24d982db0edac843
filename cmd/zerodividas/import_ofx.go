package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/ofx"
)

func importCmd() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX statement",
		Long: `Parse a bank statement in OFX/QFX format and add its entries to the
given account. Imported entries are marked as paid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer func() { _ = f.Close() }()

			transactions, err := ofx.NewParser().ParseFile(f, accountID)
			if err != nil {
				return err
			}

			for _, tx := range transactions {
				s.AddTransaction(tx)
			}

			fmt.Println(cli.Success(fmt.Sprintf("%d transações importadas.", len(transactions))))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account id to import into")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
