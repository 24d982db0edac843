package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerodividas/zerodividas/internal/model"
)

// TransactionPatch is a shallow merge-patch: only non-nil fields are applied.
type TransactionPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	CategoryID  *string
	AccountID   *string
	Type        *model.TransactionType
	Status      *model.TransactionStatus
	IsRecurring *bool
	Recurrence  *model.Recurrence
}

// AddTransaction appends a transaction to the collection. The entry is
// normalized so the amount invariant holds no matter what the caller built.
func (s *Store) AddTransaction(tx model.Transaction) {
	tx.Normalize()
	s.snap.Transactions = append(s.snap.Transactions, tx)
	s.commit(KeyTransactions)
}

// UpdateTransaction merges the provided fields into the transaction with the
// given id, preserving everything else. Unknown ids are silently ignored.
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) {
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID != id {
			continue
		}
		t := &s.snap.Transactions[i]
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.CategoryID != nil {
			t.CategoryID = *patch.CategoryID
		}
		if patch.AccountID != nil {
			t.AccountID = *patch.AccountID
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.IsRecurring != nil {
			t.IsRecurring = *patch.IsRecurring
		}
		if patch.Recurrence != nil {
			t.Recurrence = *patch.Recurrence
		}
		t.Normalize()
		s.commit(KeyTransactions)
		return
	}
}

// DeleteTransaction removes the transaction with the given id. Unknown ids
// are silently ignored.
func (s *Store) DeleteTransaction(id string) {
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID == id {
			s.snap.Transactions = append(s.snap.Transactions[:i], s.snap.Transactions[i+1:]...)
			s.commit(KeyTransactions)
			return
		}
	}
}

// PayBill marks the transaction with the given id as paid. It does not check
// the transaction type: paying an income entry also sets its status to paid.
// Unknown ids are silently ignored; repeated calls are idempotent.
func (s *Store) PayBill(id string) {
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID == id {
			s.snap.Transactions[i].Status = model.StatusPaid
			s.commit(KeyTransactions)
			return
		}
	}
}
