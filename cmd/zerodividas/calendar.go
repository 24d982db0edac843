package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/derive"
)

func calendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [date]",
		Short: "Show activity for a day",
		Long: `List the transactions of a given day (YYYY-MM-DD, default today),
including the projected occurrences of monthly recurring entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			day := time.Now()
			if len(args) == 1 {
				day, err = time.Parse(dateLayout, args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", args[0], err)
				}
			}

			transactions := derive.TransactionsOn(s.Transactions(), day)
			activity := derive.ActivityOn(s.Transactions(), day)

			fmt.Println(cli.TitleStyle.Render(cli.FormatDate(day)))
			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma movimentação neste dia."))
				return nil
			}

			markers := ""
			if activity.HasIncome {
				markers += cli.IncomeStyle.Render("● entradas ")
			}
			if activity.HasExpense {
				markers += cli.ExpenseStyle.Render("● saídas")
			}
			fmt.Println(markers)
			fmt.Println()

			categories := s.Categories()
			for _, tx := range transactions {
				cat := derive.CategoryByID(categories, tx.CategoryID)
				recurring := ""
				if tx.IsRecurring {
					recurring = cli.SubtleStyle.Render(" (recorrente)")
				}
				fmt.Printf("  %-24s %-12s %s%s\n",
					tx.Description, cat.Name, cli.FormatAmount(tx), recurring)
			}
			return nil
		},
	}
}
