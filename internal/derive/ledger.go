package derive

import (
	"sort"

	"github.com/zerodividas/zerodividas/internal/model"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// Filter narrows and orders the ledger view.
type Filter struct {
	// Category and Account filter by exact id; FilterAll (or empty)
	// disables that dimension.
	Category string
	Account  string
	Order    model.SortOrder
}

// SortAndFilter returns a new slice filtered by the id dimensions and sorted
// with a stable two-level order: pending expenses always rank ahead of every
// other entry regardless of the chosen order; within equal rank the selected
// order applies. The rank is total, so the invariant holds over mixed-type
// lists too, not only after a ByType split.
func SortAndFilter(transactions []model.Transaction, f Filter) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Category != "" && f.Category != FilterAll && t.CategoryID != f.Category {
			continue
		}
		if f.Account != "" && f.Account != FilterAll && t.AccountID != f.Account {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		// Unpaid expenses surface first.
		if ra, rb := statusRank(a), statusRank(b); ra != rb {
			return ra < rb
		}

		switch f.Order {
		case model.SortDateDesc:
			return a.Date.After(b.Date)
		case model.SortAmountAsc:
			return a.Amount.Cmp(b.Amount) < 0
		case model.SortAmountDesc:
			return a.Amount.Cmp(b.Amount) > 0
		default: // SortDefault and SortDateAsc are both oldest-first.
			return a.Date.Before(b.Date)
		}
	})

	return out
}

// statusRank orders pending expenses ahead of paid expenses and income.
func statusRank(t model.Transaction) int {
	if t.Type == model.TypeExpense && t.Status == model.StatusPending {
		return 0
	}
	return 1
}

// ByType splits off the transactions of a single type, preserving order.
func ByType(transactions []model.Transaction, typ model.TransactionType) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}
