package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	s := store.New(nil)
	s.AddAccount(model.Account{ID: "acc-1", BankName: "Nubank", Balance: decimal.NewFromInt(1000)})
	s.AddCategory(model.Category{ID: "cat-1", Name: "Moradia", Color: "#39D2C0", Type: model.CategoryTypeExpense})
	s.AddTransaction(model.Transaction{
		ID:          "tx-1",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Aluguel",
		CategoryID:  "cat-1",
		AccountID:   "acc-1",
		Type:        model.TypeExpense,
		Status:      model.StatusPending,
		Amount:      decimal.NewFromInt(1200),
	})

	m := New(s)
	m.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_TabSwitching(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, model.TabHome, m.store.ActiveTab())

	m = press(t, m, "2")
	assert.Equal(t, model.TabAccounts, m.store.ActiveTab())

	m = press(t, m, "3")
	assert.Equal(t, model.TabStatistics, m.store.ActiveTab())

	m = press(t, m, "1")
	assert.Equal(t, model.TabHome, m.store.ActiveTab())
}

func TestModel_TabCycling(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, model.TabAccounts, m.store.ActiveTab())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, model.TabStatistics, m.store.ActiveTab())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, model.TabHome, m.store.ActiveTab())
}

func TestModel_PayBillFromLedger(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "2", "p")

	transactions := m.store.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, model.StatusPaid, transactions[0].Status)
}

func TestModel_PayIgnoredOutsideAccountsTab(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "p")

	assert.Equal(t, model.StatusPending, m.store.Transactions()[0].Status)
}

func TestModel_SortCycling(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "2")
	assert.Equal(t, model.SortDefault, m.store.AccountsSortOrder())

	m = press(t, m, "s")
	assert.Equal(t, model.SortDateAsc, m.store.AccountsSortOrder())

	m = press(t, m, "s", "s", "s", "s")
	assert.Equal(t, model.SortDefault, m.store.AccountsSortOrder())
}

func TestModel_ViewRendersEachTab(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	for _, key := range []string{"1", "2", "3"} {
		m = press(t, m, key)
		view := m.View()
		assert.NotEmpty(t, view)
	}

	m = press(t, m, "2")
	assert.Contains(t, m.View(), "Aluguel")
}
