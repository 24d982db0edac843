package store

import "github.com/zerodividas/zerodividas/internal/model"

// UI-selection setters. Pure state assignment with no business logic; the
// selection still rides along in the persisted snapshot.

// SetActiveTab selects the visible view tab.
func (s *Store) SetActiveTab(tab model.Tab) {
	s.snap.ActiveTab = tab
	s.commit(KeyActiveTab)
}

// OpenTransactionModal opens the add-transaction modal, optionally
// preselecting a transaction type.
func (s *Store) OpenTransactionModal(typ model.TransactionType) {
	s.snap.IsTransactionModalOpen = true
	s.snap.TransactionModalType = typ
	s.commit(KeyIsTransactionModalOpen, KeyTransactionModalType)
}

// CloseTransactionModal closes the add-transaction modal.
func (s *Store) CloseTransactionModal() {
	s.snap.IsTransactionModalOpen = false
	s.commit(KeyIsTransactionModalOpen)
}

// OpenAddAccountModal opens the add-account modal.
func (s *Store) OpenAddAccountModal() {
	s.snap.IsAddAccountModalOpen = true
	s.commit(KeyIsAddAccountModalOpen)
}

// CloseAddAccountModal closes the add-account modal.
func (s *Store) CloseAddAccountModal() {
	s.snap.IsAddAccountModalOpen = false
	s.commit(KeyIsAddAccountModalOpen)
}

// SetAccountsSortOrder selects the ledger sort order.
func (s *Store) SetAccountsSortOrder(order model.SortOrder) {
	s.snap.AccountsSortOrder = order
	s.commit(KeyAccountsSortOrder)
}

// IsTransactionModalOpen reports the add-transaction modal state.
func (s *Store) IsTransactionModalOpen() bool { return s.snap.IsTransactionModalOpen }

// TransactionModalType returns the preselected type for the add-transaction
// modal.
func (s *Store) TransactionModalType() model.TransactionType { return s.snap.TransactionModalType }

// IsAddAccountModalOpen reports the add-account modal state.
func (s *Store) IsAddAccountModalOpen() bool { return s.snap.IsAddAccountModalOpen }
