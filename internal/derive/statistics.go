package derive

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerodividas/zerodividas/internal/model"
)

// CategoryTotal is one slice of the expenses-by-category breakdown.
type CategoryTotal struct {
	Name   string
	Color  string
	Amount decimal.Decimal
}

// MonthStatistics aggregates the analysis view for the current month.
type MonthStatistics struct {
	// Estimated sums every expense dated this month, paid or not.
	Estimated decimal.Decimal
	// Paid sums only the already-settled expenses of the month.
	Paid decimal.Decimal
	// Income sums the month's income entries, for the income-vs-expense
	// comparison.
	Income decimal.Decimal
	// ByCategory breaks the month's expenses down per expense category,
	// dropping empty slices. Expenses whose category was deleted are
	// lumped under the fallback label.
	ByCategory []CategoryTotal
}

// Statistics computes the month-scoped analysis totals.
func Statistics(transactions []model.Transaction, categories []model.Category, now time.Time) MonthStatistics {
	start, end := MonthBounds(now)

	var stats MonthStatistics
	perCategory := make(map[string]decimal.Decimal)
	var orphaned decimal.Decimal

	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}

	for _, t := range transactions {
		if !inWindow(t.Date, start, end) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			stats.Income = stats.Income.Add(t.Amount)
		case model.TypeExpense:
			stats.Estimated = stats.Estimated.Add(t.Amount)
			if t.Status == model.StatusPaid {
				stats.Paid = stats.Paid.Add(t.Amount)
			}
			if _, ok := known[t.CategoryID]; ok {
				perCategory[t.CategoryID] = perCategory[t.CategoryID].Add(t.Amount)
			} else {
				orphaned = orphaned.Add(t.Amount)
			}
		}
	}

	for _, c := range categories {
		if c.Type != model.CategoryTypeExpense {
			continue
		}
		if amount, ok := perCategory[c.ID]; ok && amount.IsPositive() {
			stats.ByCategory = append(stats.ByCategory, CategoryTotal{
				Name:   c.Name,
				Color:  c.Color,
				Amount: amount,
			})
		}
	}
	if orphaned.IsPositive() {
		stats.ByCategory = append(stats.ByCategory, CategoryTotal{
			Name:   FallbackName,
			Color:  FallbackColor,
			Amount: orphaned,
		})
	}

	return stats
}

// PayoffMonths estimates how many months it takes to clear a debt at a fixed
// monthly payment, rounding up. It reports false when either input is not
// positive.
func PayoffMonths(debt, payment decimal.Decimal) (int, bool) {
	if !debt.IsPositive() || !payment.IsPositive() {
		return 0, false
	}
	months := debt.Div(payment).Ceil()
	return int(months.IntPart()), true
}
