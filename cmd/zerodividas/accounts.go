package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts",
		Long:  `List, add, update, and delete bank accounts.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			accounts := s.Accounts()
			fmt.Println(cli.TitleStyle.Render("Contas bancárias"))
			if len(accounts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  (vazio)"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBANCO\tTIPO\tSALDO")
			total := decimal.Zero
			for _, acc := range accounts {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(acc.Color)).Render("■")
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
					acc.ID, swatch, acc.BankName, acc.Type, cli.FormatBRL(acc.Balance))
				total = total.Add(acc.Balance)
			}
			_ = w.Flush()

			fmt.Printf("\nSaldo total: %s\n", cli.FormatBRL(total))
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		bank, color, typeFlag string
		balanceFlag           string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bank account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			balance, err := decimal.NewFromString(balanceFlag)
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", balanceFlag, err)
			}

			acc := model.Account{
				ID:       uuid.NewString(),
				BankName: bank,
				Color:    color,
				Type:     model.AccountType(typeFlag),
				Balance:  balance,
			}
			s.AddAccount(acc)

			fmt.Println(cli.Success(fmt.Sprintf("Conta %s adicionada.", acc.BankName)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bank, "bank", "b", "", "bank name")
	cmd.Flags().StringVar(&balanceFlag, "balance", "0", "starting balance")
	cmd.Flags().StringVar(&color, "color", "#39D2C0", "display color")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(model.AccountTypeChecking), "account type")
	_ = cmd.MarkFlagRequired("bank")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		bank, color, typeFlag string
		balanceFlag           string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			var patch store.AccountPatch
			if cmd.Flags().Changed("bank") {
				patch.BankName = &bank
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("type") {
				typ := model.AccountType(typeFlag)
				patch.Type = &typ
			}
			if cmd.Flags().Changed("balance") {
				balance, err := decimal.NewFromString(balanceFlag)
				if err != nil {
					return fmt.Errorf("invalid balance %q: %w", balanceFlag, err)
				}
				patch.Balance = &balance
			}

			s.UpdateAccount(args[0], patch)
			fmt.Println(cli.Success("Conta atualizada."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bank, "bank", "b", "", "bank name")
	cmd.Flags().StringVar(&balanceFlag, "balance", "", "balance")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "account type")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			s.DeleteAccount(args[0])
			fmt.Println(cli.Success("Conta removida."))
			return nil
		},
	}
}
