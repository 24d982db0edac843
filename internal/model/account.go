package model

import "github.com/shopspring/decimal"

// AccountType classifies a bank account.
type AccountType string

const (
	// AccountTypeChecking represents a regular checking account.
	AccountTypeChecking AccountType = "checking"
	// AccountTypeSavings represents a savings account.
	AccountTypeSavings AccountType = "savings"
	// AccountTypeInvestment represents an investment account.
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a bank account. Balance is a standalone field the user
// maintains directly; transaction mutations never recompute it.
type Account struct {
	ID       string          `json:"id"`
	BankName string          `json:"bankName"`
	Color    string          `json:"color"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
}
