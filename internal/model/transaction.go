package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money movement. Amounts are
// always stored non-negative; direction is carried here, never by sign.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// TransactionStatus tracks whether a transaction has been settled.
// The only transition offered by the store is pending -> paid.
type TransactionStatus string

const (
	// StatusPending marks a transaction that has not been settled yet.
	StatusPending TransactionStatus = "pending"
	// StatusPaid marks a settled transaction.
	StatusPaid TransactionStatus = "paid"
)

// Recurrence describes how often a recurring transaction repeats.
type Recurrence string

const (
	// RecurrenceNone is the zero value for non-recurring transactions.
	RecurrenceNone Recurrence = ""
	// RecurrenceMonthly repeats on the same day of every month.
	RecurrenceMonthly Recurrence = "monthly"
	// RecurrenceYearly repeats on the same date every year.
	RecurrenceYearly Recurrence = "yearly"
)

// Transaction represents a single categorized income or expense entry.
// CategoryID and AccountID may dangle; read-side code must tolerate
// references to deleted categories and accounts.
type Transaction struct {
	Date        time.Time         `json:"date"`
	ID          string            `json:"id"`
	Description string            `json:"description"`
	CategoryID  string            `json:"categoryId"`
	AccountID   string            `json:"accountId"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Recurrence  Recurrence        `json:"recurrence,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	IsRecurring bool              `json:"isRecurring"`
}

// Normalize enforces the shape invariants: a non-negative amount, and a
// defined recurrence exactly when IsRecurring is set. Recurring entries
// without an explicit recurrence default to monthly.
func (t *Transaction) Normalize() {
	if t.Amount.IsNegative() {
		t.Amount = t.Amount.Abs()
	}
	if t.IsRecurring && t.Recurrence == RecurrenceNone {
		t.Recurrence = RecurrenceMonthly
	}
	if !t.IsRecurring {
		t.Recurrence = RecurrenceNone
	}
}
