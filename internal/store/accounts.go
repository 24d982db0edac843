package store

import (
	"github.com/shopspring/decimal"

	"github.com/zerodividas/zerodividas/internal/model"
)

// AccountPatch is a shallow merge-patch for accounts.
type AccountPatch struct {
	BankName *string
	Balance  *decimal.Decimal
	Color    *string
	Type     *model.AccountType
}

// AddAccount appends an account to the collection.
func (s *Store) AddAccount(a model.Account) {
	s.snap.Accounts = append(s.snap.Accounts, a)
	s.commit(KeyAccounts)
}

// UpdateAccount merges the provided fields into the account with the given
// id. Unknown ids are silently ignored.
func (s *Store) UpdateAccount(id string, patch AccountPatch) {
	for i := range s.snap.Accounts {
		if s.snap.Accounts[i].ID != id {
			continue
		}
		a := &s.snap.Accounts[i]
		if patch.BankName != nil {
			a.BankName = *patch.BankName
		}
		if patch.Balance != nil {
			a.Balance = *patch.Balance
		}
		if patch.Color != nil {
			a.Color = *patch.Color
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		s.commit(KeyAccounts)
		return
	}
}

// DeleteAccount removes the account with the given id. Transactions that
// reference it keep their dangling AccountID; the read side resolves those
// to a fallback.
func (s *Store) DeleteAccount(id string) {
	for i := range s.snap.Accounts {
		if s.snap.Accounts[i].ID == id {
			s.snap.Accounts = append(s.snap.Accounts[:i], s.snap.Accounts[i+1:]...)
			s.commit(KeyAccounts)
			return
		}
	}
}
