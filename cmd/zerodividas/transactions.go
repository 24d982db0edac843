package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/derive"
	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

const dateLayout = "2006-01-02"

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, add, update, pay, and delete income and expense entries.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(payTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var category, account, sortFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display expenses and income, optionally filtered by category or account.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			if sortFlag != "" {
				// The selection is remembered across invocations, like
				// the sort dropdown in the accounts view.
				s.SetAccountsSortOrder(model.ParseSortOrder(sortFlag))
			}

			transactions := derive.SortAndFilter(s.Transactions(), derive.Filter{
				Category: category,
				Account:  account,
				Order:    s.AccountsSortOrder(),
			})

			categories := s.Categories()
			accounts := s.Accounts()

			printSection := func(title string, rows []model.Transaction) {
				fmt.Println(cli.TitleStyle.Render(title))
				if len(rows) == 0 {
					fmt.Println(cli.SubtleStyle.Render("  (vazio)"))
					return
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tDATA\tDESCRIÇÃO\tCATEGORIA\tCONTA\tSTATUS\tVALOR")
				for _, tx := range rows {
					cat := derive.CategoryByID(categories, tx.CategoryID)
					acc := derive.AccountByID(accounts, tx.AccountID)
					recurring := ""
					if tx.IsRecurring {
						recurring = " ↻"
					}
					fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\t%s\t%s\t%s\n",
						tx.ID, cli.FormatDate(tx.Date), tx.Description, recurring,
						cat.Name, acc.BankName, cli.StatusLabel(tx.Status), cli.FormatAmount(tx))
				}
				_ = w.Flush()
			}

			printSection("Despesas", derive.ByType(transactions, model.TypeExpense))
			fmt.Println()
			printSection("Entradas", derive.ByType(transactions, model.TypeIncome))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category id")
	cmd.Flags().StringVar(&account, "account", "", "filter by account id")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort order (default, date-asc, date-desc, amount-asc, amount-desc)")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		description, dateFlag   string
		categoryID, accountID   string
		typeFlag, statusFlag    string
		amountFlag, recurrence  string
		isRecurring             bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountFlag)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountFlag, err)
			}

			date := time.Now()
			if dateFlag != "" {
				date, err = time.Parse(dateLayout, dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateFlag, err)
				}
			}

			tx := model.Transaction{
				ID:          uuid.NewString(),
				Date:        date,
				Description: description,
				CategoryID:  categoryID,
				AccountID:   accountID,
				Type:        model.TransactionType(typeFlag),
				Status:      model.TransactionStatus(statusFlag),
				Amount:      amount,
				IsRecurring: isRecurring,
				Recurrence:  model.Recurrence(recurrence),
			}
			s.AddTransaction(tx)

			fmt.Println(cli.Success(fmt.Sprintf("Transação %s adicionada.", tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "amount (always stored unsigned)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&accountID, "account", "", "account id")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&statusFlag, "status", string(model.StatusPending), "paid or pending")
	cmd.Flags().BoolVar(&isRecurring, "recurring", false, "repeats monthly")
	cmd.Flags().StringVar(&recurrence, "recurrence", "", "recurrence interval for recurring entries")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		description, dateFlag  string
		categoryID, accountID  string
		typeFlag, statusFlag   string
		amountFlag             string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a transaction",
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

			var patch store.TransactionPatch
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				amount, err := decimal.NewFromString(amountFlag)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", amountFlag, err)
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("date") {
				date, err := time.Parse(dateLayout, dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateFlag, err)
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("account") {
				patch.AccountID = &accountID
			}
			if cmd.Flags().Changed("type") {
				typ := model.TransactionType(typeFlag)
				patch.Type = &typ
			}
			if cmd.Flags().Changed("status") {
				status := model.TransactionStatus(statusFlag)
				patch.Status = &status
			}

			s.UpdateTransaction(args[0], patch)
			fmt.Println(cli.Success("Transação atualizada."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "transaction description")
	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "amount")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&accountID, "account", "", "account id")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "income or expense")
	cmd.Flags().StringVar(&statusFlag, "status", "", "paid or pending")

	return cmd
}

func payTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill as paid",
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

			s.PayBill(args[0])
			fmt.Println(cli.Success("Conta marcada como paga."))
			return nil
		},
	}
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			s.DeleteTransaction(args[0])
			fmt.Println(cli.Success("Transação removida."))
			return nil
		},
	}
}
