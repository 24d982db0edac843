package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/derive"
	"github.com/zerodividas/zerodividas/internal/model"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.store.ActiveTab() {
	case model.TabAccounts:
		b.WriteString(m.viewAccounts())
	case model.TabStatistics:
		b.WriteString(m.viewStatistics())
	default:
		b.WriteString(m.viewHome())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) viewHeader() string {
	name := "Zero Dívidas"
	if u := m.store.User(); u != nil {
		name = fmt.Sprintf("Olá, %s", u.Name)
	}

	tabs := []struct {
		tab   model.Tab
		label string
	}{
		{model.TabHome, "1 Início"},
		{model.TabAccounts, "2 Contas"},
		{model.TabStatistics, "3 Estatísticas"},
	}

	var rendered []string
	for _, t := range tabs {
		if t.tab == m.store.ActiveTab() {
			rendered = append(rendered, cli.SelectedStyle.Render(t.label))
		} else {
			rendered = append(rendered, cli.SubtleStyle.Render(t.label))
		}
	}

	return cli.TitleStyle.Render(name) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rendered, "  ")) + "\n"
}

func (m Model) viewHome() string {
	now := m.now()
	summary := derive.Monthly(m.store.Transactions(), m.store.Accounts(), now)

	card := strings.Join([]string{
		fmt.Sprintf("Restante para gastar  %s", cli.FormatBRL(summary.RemainingToSpend)),
		fmt.Sprintf("Entradas do mês       %s", cli.IncomeStyle.Render(cli.FormatBRL(summary.MonthlyIncome))),
		fmt.Sprintf("Saídas do mês         %s", cli.ExpenseStyle.Render(cli.FormatBRL(summary.MonthlyExpenses))),
		fmt.Sprintf("Contas a pagar        %s", cli.WarningStyle.Render(cli.FormatBRL(summary.PendingBills))),
		fmt.Sprintf("Saldo total           %s", cli.FormatBRL(summary.TotalBalance)),
	}, "\n")

	var b strings.Builder
	b.WriteString(cli.BoxStyle.Render(card))
	b.WriteString("\n\n")
	b.WriteString(cli.SubtitleStyle.Render("Próximas contas"))
	b.WriteString("\n")

	bills := derive.UpcomingBills(m.store.Transactions(), now)
	if len(bills) == 0 {
		b.WriteString(cli.SubtleStyle.Render("Nenhuma conta futura."))
		b.WriteString("\n")
	}
	categories := m.store.Categories()
	for _, bill := range bills {
		cat := derive.CategoryByID(categories, bill.CategoryID)
		b.WriteString(fmt.Sprintf("  %s  %-24s %-12s %s\n",
			cli.FormatDate(bill.Date), bill.Description, cat.Name,
			cli.ExpenseStyle.Render(cli.FormatBRL(bill.Amount))))
	}

	return b.String()
}

func (m Model) viewAccounts() string {
	var b strings.Builder

	accounts := m.store.Accounts()
	categories := m.store.Categories()

	b.WriteString(cli.SubtitleStyle.Render("Contas bancárias"))
	b.WriteString("\n")
	for _, acc := range accounts {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", acc.BankName, cli.FormatBRL(acc.Balance)))
	}
	b.WriteString("\n")

	b.WriteString(cli.SubtitleStyle.Render(fmt.Sprintf("Despesas (ordem: %s)", m.store.AccountsSortOrder())))
	b.WriteString("\n")

	expenses := m.visibleExpenses()
	if len(expenses) == 0 {
		b.WriteString(cli.SubtleStyle.Render("Nenhuma despesa registrada."))
		b.WriteString("\n")
	}
	for i, tx := range expenses {
		cat := derive.CategoryByID(categories, tx.CategoryID)
		line := fmt.Sprintf("%s  %-24s %-12s %-10s %s",
			cli.FormatDate(tx.Date), tx.Description, cat.Name,
			cli.StatusLabel(tx.Status), cli.FormatAmount(tx))
		if i == m.cursor {
			b.WriteString(cli.SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render("Entradas"))
	b.WriteString("\n")
	incomes := derive.ByType(derive.SortAndFilter(m.store.Transactions(), derive.Filter{
		Order: m.store.AccountsSortOrder(),
	}), model.TypeIncome)
	for _, tx := range incomes {
		b.WriteString(fmt.Sprintf("  %s  %-24s %s\n",
			cli.FormatDate(tx.Date), tx.Description, cli.FormatAmount(tx)))
	}

	return b.String()
}

func (m Model) viewStatistics() string {
	stats := derive.Statistics(m.store.Transactions(), m.store.Categories(), m.now())

	var b strings.Builder
	b.WriteString(cli.BoxStyle.Render(strings.Join([]string{
		fmt.Sprintf("Gasto estimado  %s", cli.FormatBRL(stats.Estimated)),
		fmt.Sprintf("Gasto pago      %s", cli.FormatBRL(stats.Paid)),
		fmt.Sprintf("Entradas        %s", cli.IncomeStyle.Render(cli.FormatBRL(stats.Income))),
	}, "\n")))
	b.WriteString("\n\n")
	b.WriteString(cli.SubtitleStyle.Render("Gastos por categoria"))
	b.WriteString("\n")

	if len(stats.ByCategory) == 0 {
		b.WriteString(cli.SubtleStyle.Render("Sem gastos neste mês."))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range stats.ByCategory {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		b.WriteString(fmt.Sprintf("  %s %-16s %s\n", swatch, c.Name, cli.FormatBRL(c.Amount)))
	}

	return b.String()
}
