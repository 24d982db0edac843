package model

// Tab identifies one of the three main views.
type Tab string

const (
	// TabHome is the dashboard view.
	TabHome Tab = "home"
	// TabAccounts is the ledger and calendar view.
	TabAccounts Tab = "accounts"
	// TabStatistics is the monthly analysis view.
	TabStatistics Tab = "statistics"
)

// SortOrder selects how the ledger view orders transactions. Pending
// expenses always rank before paid ones; the order chosen here applies
// within equal status rank.
type SortOrder string

const (
	// SortDefault is ascending by date, same as SortDateAsc.
	SortDefault SortOrder = "default"
	// SortDateAsc orders oldest first.
	SortDateAsc SortOrder = "date-asc"
	// SortDateDesc orders newest first.
	SortDateDesc SortOrder = "date-desc"
	// SortAmountAsc orders cheapest first.
	SortAmountAsc SortOrder = "amount-asc"
	// SortAmountDesc orders most expensive first.
	SortAmountDesc SortOrder = "amount-desc"
)

// ParseSortOrder maps a user-supplied string onto a SortOrder, falling back
// to SortDefault for anything unknown.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortDateAsc, SortDateDesc, SortAmountAsc, SortAmountDesc:
		return SortOrder(s)
	default:
		return SortDefault
	}
}
