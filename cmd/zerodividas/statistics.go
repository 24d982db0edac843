package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/derive"
)

func statsCmd() *cobra.Command {
	var debtFlag, paymentFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly spending statistics",
		Long: `Break the current month down by category, compare estimated and paid
spending, and optionally project how long a debt takes to pay off with
--debt and --payment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			stats := derive.Statistics(s.Transactions(), s.Categories(), time.Now())

			fmt.Println(cli.TitleStyle.Render("Estatísticas do mês"))
			fmt.Println(cli.BoxStyle.Render(strings.Join([]string{
				fmt.Sprintf("Gasto estimado  %s", cli.FormatBRL(stats.Estimated)),
				fmt.Sprintf("Gasto pago      %s", cli.FormatBRL(stats.Paid)),
				fmt.Sprintf("Entradas        %s", cli.IncomeStyle.Render(cli.FormatBRL(stats.Income))),
			}, "\n")))

			fmt.Println()
			fmt.Println(cli.SubtitleStyle.Render("Gastos por categoria"))
			if len(stats.ByCategory) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  Sem gastos neste mês."))
			}
			for _, c := range stats.ByCategory {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
				fmt.Printf("  %s %-16s %s\n", swatch, c.Name, cli.FormatBRL(c.Amount))
			}

			if debtFlag != "" || paymentFlag != "" {
				debt, err := decimal.NewFromString(debtFlag)
				if err != nil {
					return fmt.Errorf("invalid debt %q: %w", debtFlag, err)
				}
				payment, err := decimal.NewFromString(paymentFlag)
				if err != nil {
					return fmt.Errorf("invalid payment %q: %w", paymentFlag, err)
				}

				fmt.Println()
				months, ok := derive.PayoffMonths(debt, payment)
				if !ok {
					fmt.Println(cli.Warning("Com esse valor mensal a dívida nunca será quitada."))
					return nil
				}
				fmt.Printf("Pagando %s por mês, a dívida de %s é quitada em %d meses.\n",
					cli.FormatBRL(payment), cli.FormatBRL(debt), months)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&debtFlag, "debt", "", "total debt for the payoff projection")
	cmd.Flags().StringVar(&paymentFlag, "payment", "", "monthly payment for the payoff projection")
	cmd.MarkFlagsRequiredTogether("debt", "payment")

	return cmd
}
