package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/derive"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly overview",
		Long:  `Display the month's income, expenses, pending bills and remaining budget.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			now := time.Now()
			summary := derive.Monthly(s.Transactions(), s.Accounts(), now)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Resumo de %s", now.Format("01/2006"))))
			fmt.Println(cli.BoxStyle.Render(strings.Join([]string{
				fmt.Sprintf("Restante para gastar  %s", cli.FormatBRL(summary.RemainingToSpend)),
				fmt.Sprintf("Entradas do mês       %s", cli.IncomeStyle.Render(cli.FormatBRL(summary.MonthlyIncome))),
				fmt.Sprintf("Saídas do mês         %s", cli.ExpenseStyle.Render(cli.FormatBRL(summary.MonthlyExpenses))),
				fmt.Sprintf("Contas a pagar        %s", cli.WarningStyle.Render(cli.FormatBRL(summary.PendingBills))),
				fmt.Sprintf("A receber             %s", cli.FormatBRL(summary.PendingIncome)),
				fmt.Sprintf("Saldo total           %s", cli.FormatBRL(summary.TotalBalance)),
			}, "\n")))

			bills := derive.UpcomingBills(s.Transactions(), now)
			fmt.Println()
			fmt.Println(cli.SubtitleStyle.Render("Próximas contas"))
			if len(bills) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  Nenhuma conta futura."))
				return nil
			}

			categories := s.Categories()
			for _, bill := range bills {
				cat := derive.CategoryByID(categories, bill.CategoryID)
				fmt.Printf("  %s  %-24s %-12s %s\n",
					cli.FormatDate(bill.Date), bill.Description, cat.Name,
					cli.ExpenseStyle.Render(cli.FormatBRL(bill.Amount)))
			}
			return nil
		},
	}
}
