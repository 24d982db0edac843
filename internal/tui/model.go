// Package tui implements the interactive terminal interface: the home
// summary, the accounts ledger, and the statistics view, each bound to
// a tab in the session state.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerodividas/zerodividas/internal/derive"
	"github.com/zerodividas/zerodividas/internal/model"
	"github.com/zerodividas/zerodividas/internal/store"
)

// Model is the root bubbletea model. All reads go through the store so
// the rendered tab always reflects the latest committed state.
type Model struct {
	store  *store.Store
	keymap KeyMap
	help   help.Model
	now    func() time.Time

	cursor int
	width  int
	height int
}

// New creates the root model bound to the given store.
func New(s *store.Store) Model {
	return Model{
		store:  s,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Home):
		m.switchTab(model.TabHome)
		return m, nil

	case key.Matches(msg, m.keymap.Accounts):
		m.switchTab(model.TabAccounts)
		return m, nil

	case key.Matches(msg, m.keymap.Statistics):
		m.switchTab(model.TabStatistics)
		return m, nil

	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab(nextTab(m.store.ActiveTab(), 1))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.switchTab(nextTab(m.store.ActiveTab(), -1))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visibleExpenses())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keymap.Pay):
		if m.store.ActiveTab() == model.TabAccounts {
			expenses := m.visibleExpenses()
			if m.cursor < len(expenses) {
				m.store.PayBill(expenses[m.cursor].ID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.Sort):
		if m.store.ActiveTab() == model.TabAccounts {
			m.store.SetAccountsSortOrder(nextSortOrder(m.store.AccountsSortOrder()))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) switchTab(tab model.Tab) {
	if m.store.ActiveTab() != tab {
		m.store.SetActiveTab(tab)
		m.cursor = 0
	}
}

// visibleExpenses returns the expense rows of the accounts ledger in
// display order, so the cursor and the pay action agree on positions.
func (m Model) visibleExpenses() []model.Transaction {
	sorted := derive.SortAndFilter(m.store.Transactions(), derive.Filter{
		Order: m.store.AccountsSortOrder(),
	})
	return derive.ByType(sorted, model.TypeExpense)
}

func nextTab(t model.Tab, step int) model.Tab {
	tabs := []model.Tab{model.TabHome, model.TabAccounts, model.TabStatistics}
	for i, candidate := range tabs {
		if candidate == t {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return model.TabHome
}

func nextSortOrder(o model.SortOrder) model.SortOrder {
	orders := []model.SortOrder{
		model.SortDefault,
		model.SortDateAsc,
		model.SortDateDesc,
		model.SortAmountAsc,
		model.SortAmountDesc,
	}
	for i, candidate := range orders {
		if candidate == o {
			return orders[(i+1)%len(orders)]
		}
	}
	return model.SortDefault
}

