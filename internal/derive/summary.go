// Package derive holds the pure read-side computations over store snapshots.
// Every function takes the slices it needs plus an explicit "now" and never
// mutates its inputs, so views can call them on every render.
package derive

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerodividas/zerodividas/internal/model"
)

// upcomingBillLimit caps the bill alert list on the dashboard.
const upcomingBillLimit = 5

// MonthBounds returns the first and last instant of now's calendar month,
// in now's location. Both bounds are inclusive.
func MonthBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// inWindow reports whether d falls inside [start, end], inclusive on both
// ends.
func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// MonthlySummary aggregates the dashboard numbers for a single month.
type MonthlySummary struct {
	// MonthlyIncome and MonthlyExpenses sum transactions dated inside the
	// current calendar month, regardless of status.
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	// TotalBalance sums all account balances; it is not month-scoped.
	TotalBalance decimal.Decimal
	// PendingBills and PendingIncome sum pending transactions dated up to
	// the end of the month. There is no lower bound: overdue pending
	// entries from any past month are included.
	PendingBills  decimal.Decimal
	PendingIncome decimal.Decimal
	// RemainingToSpend = TotalBalance + PendingIncome - PendingBills.
	RemainingToSpend decimal.Decimal
}

// Monthly computes the month-scoped totals shown on the home view.
func Monthly(transactions []model.Transaction, accounts []model.Account, now time.Time) MonthlySummary {
	start, end := MonthBounds(now)

	var s MonthlySummary
	for _, t := range transactions {
		if inWindow(t.Date, start, end) {
			switch t.Type {
			case model.TypeIncome:
				s.MonthlyIncome = s.MonthlyIncome.Add(t.Amount)
			case model.TypeExpense:
				s.MonthlyExpenses = s.MonthlyExpenses.Add(t.Amount)
			}
		}
		if t.Status == model.StatusPending && !t.Date.After(end) {
			switch t.Type {
			case model.TypeExpense:
				s.PendingBills = s.PendingBills.Add(t.Amount)
			case model.TypeIncome:
				s.PendingIncome = s.PendingIncome.Add(t.Amount)
			}
		}
	}

	for _, a := range accounts {
		s.TotalBalance = s.TotalBalance.Add(a.Balance)
	}

	s.RemainingToSpend = s.TotalBalance.Add(s.PendingIncome).Sub(s.PendingBills)
	return s
}

// UpcomingBills returns the next pending expenses strictly after now,
// soonest first, capped at five entries.
func UpcomingBills(transactions []model.Transaction, now time.Time) []model.Transaction {
	var bills []model.Transaction
	for _, t := range transactions {
		if t.Type == model.TypeExpense && t.Status == model.StatusPending && t.Date.After(now) {
			bills = append(bills, t)
		}
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Date.Before(bills[j].Date)
	})

	if len(bills) > upcomingBillLimit {
		bills = bills[:upcomingBillLimit]
	}
	return bills
}
