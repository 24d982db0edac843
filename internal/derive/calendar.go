package derive

import (
	"time"

	"github.com/zerodividas/zerodividas/internal/model"
)

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dateOnly truncates an instant to its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TransactionsOn projects the transactions visible on a calendar day: the
// entries literally dated that day, plus a virtual occurrence of every
// monthly recurring transaction whose day-of-month matches, as long as the
// day is on or after the recurrence's origin date. A recurring transaction
// already present literally is not duplicated. The result is computed fresh
// on every call; virtual occurrences are never stored.
func TransactionsOn(transactions []model.Transaction, day time.Time) []model.Transaction {
	var out []model.Transaction
	seen := make(map[string]struct{})

	for _, t := range transactions {
		if sameDay(t.Date, day) {
			out = append(out, t)
			seen[t.ID] = struct{}{}
		}
	}

	target := dateOnly(day)
	for _, t := range transactions {
		if !t.IsRecurring || t.Recurrence != model.RecurrenceMonthly {
			continue
		}
		if t.Date.Day() != day.Day() {
			continue
		}
		// Recurrence never projects backward before its origin.
		if target.Before(dateOnly(t.Date)) {
			continue
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}

	return out
}

// DayActivity marks which transaction types touch a calendar day, counting
// virtual recurring occurrences. Calendar tiles render dots from this.
type DayActivity struct {
	HasIncome  bool
	HasExpense bool
}

// ActivityOn summarizes the day's projected transactions by type.
func ActivityOn(transactions []model.Transaction, day time.Time) DayActivity {
	var a DayActivity
	for _, t := range TransactionsOn(transactions, day) {
		switch t.Type {
		case model.TypeIncome:
			a.HasIncome = true
		case model.TypeExpense:
			a.HasExpense = true
		}
	}
	return a
}
