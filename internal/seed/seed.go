// Package seed generates the demo identity's starting dataset: a handful of
// accounts, a recurring salary, and a few months of randomized expenses. The
// structure is deterministic, the content is not.
package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

const (
	accountCount = 3
	expenseCount = 50
	// salaryMonths spans the seeded window: two months back through one
	// month ahead.
	salaryMonths = 4
	// Salary lands on the 5th of each month.
	salaryDay = 5
)

type bank struct {
	name  string
	color string
}

var banks = []bank{
	{"Nubank", "#820AD1"},
	{"Inter", "#FF7A00"},
	{"Itaú", "#EC7000"},
	{"Bradesco", "#CC092F"},
	{"Santander", "#EC0000"},
	{"Caixa", "#005CA9"},
	{"Banco do Brasil", "#F8D117"},
}

// DefaultCategories returns a fresh copy of the stock category list. Ids are
// stable so seeded transactions can reference them.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Alimentação", Color: "#FF5733", Type: model.CategoryTypeExpense},
		{ID: "2", Name: "Transporte", Color: "#33FF57", Type: model.CategoryTypeExpense},
		{ID: "3", Name: "Moradia", Color: "#3357FF", Type: model.CategoryTypeExpense},
		{ID: "4", Name: "Lazer", Color: "#FF33A1", Type: model.CategoryTypeExpense},
		{ID: "5", Name: "Saúde", Color: "#33FFF5", Type: model.CategoryTypeExpense},
		{ID: "6", Name: "Salário", Color: "#57FF33", Type: model.CategoryTypeIncome},
		{ID: "7", Name: "Freelance", Color: "#FFD700", Type: model.CategoryTypeIncome},
	}
}

// salaryCategoryID is the stock income category seeded salaries reference.
const salaryCategoryID = "6"

// Generate produces an internally consistent dataset relative to now: every
// transaction references a generated account and a stock category, at least
// one recurring monthly income exists, and statuses are paid or pending
// depending on whether the date has passed.
func Generate(now time.Time) store.Dataset {
	f := gofakeit.New(0)

	user := model.User{
		ID:     uuid.NewString(),
		Name:   f.Name(),
		Email:  f.Email(),
		Avatar: f.ImageURL(200, 200),
	}

	accounts := make([]model.Account, 0, accountCount)
	for i := 0; i < accountCount; i++ {
		b := banks[f.Number(0, len(banks)-1)]
		accounts = append(accounts, model.Account{
			ID:       uuid.NewString(),
			BankName: b.name,
			Color:    b.color,
			Type:     model.AccountTypeChecking,
			Balance:  money(f, 100, 5000),
		})
	}

	categories := DefaultCategories()
	expenseCategories := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == model.CategoryTypeExpense {
			expenseCategories = append(expenseCategories, c)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windowStart := monthStart.AddDate(0, -2, 0)
	windowEnd := monthStart.AddDate(0, 2, 0).Add(-time.Nanosecond)

	transactions := make([]model.Transaction, 0, salaryMonths+expenseCount)

	for i := 0; i < salaryMonths; i++ {
		month := windowStart.AddDate(0, i, 0)
		date := time.Date(month.Year(), month.Month(), salaryDay, 9, 0, 0, 0, now.Location())
		transactions = append(transactions, model.Transaction{
			ID:          uuid.NewString(),
			Description: "Salário Mensal",
			Amount:      money(f, 3000, 5000),
			Date:        date,
			CategoryID:  salaryCategoryID,
			AccountID:   accounts[0].ID,
			Type:        model.TypeIncome,
			Status:      statusFor(date, now),
			IsRecurring: true,
			Recurrence:  model.RecurrenceMonthly,
		})
	}

	for i := 0; i < expenseCount; i++ {
		date := f.DateRange(windowStart, windowEnd)
		category := expenseCategories[f.Number(0, len(expenseCategories)-1)]
		account := accounts[f.Number(0, len(accounts)-1)]
		transactions = append(transactions, model.Transaction{
			ID:          uuid.NewString(),
			Description: f.ProductName(),
			Amount:      money(f, 10, 500),
			Date:        date,
			CategoryID:  category.ID,
			AccountID:   account.ID,
			Type:        model.TypeExpense,
			Status:      statusFor(date, now),
		})
	}

	return store.Dataset{
		User:         user,
		Accounts:     accounts,
		Transactions: transactions,
		Categories:   categories,
	}
}

func statusFor(date, now time.Time) model.TransactionStatus {
	if date.Before(now) {
		return model.StatusPaid
	}
	return model.StatusPending
}

func money(f *gofakeit.Faker, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(f.Price(min, max)).Round(2)
}
