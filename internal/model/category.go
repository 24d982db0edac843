package model

// CategoryType indicates whether a category groups income or expense entries.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Deleting a category does not
// cascade to its transactions; orphaned references resolve to a fallback
// label on the read side.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Type  CategoryType `json:"type"`
}
