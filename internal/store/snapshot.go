package store

import "github.com/zerodividas/zerodividas/internal/model"

// Changed-key names reported to the persister. They match the snapshot's
// serialized field names.
const (
	KeyUser                   = "user"
	KeyAccounts               = "accounts"
	KeyTransactions           = "transactions"
	KeyCategories             = "categories"
	KeyIsAuthenticated        = "isAuthenticated"
	KeyRegisteredUsers        = "registeredUsers"
	KeyActiveTab              = "activeTab"
	KeyIsTransactionModalOpen = "isTransactionModalOpen"
	KeyTransactionModalType   = "transactionModalType"
	KeyIsAddAccountModalOpen  = "isAddAccountModalOpen"
	KeyAccountsSortOrder      = "accountsSortOrder"
)

// Snapshot is the complete state of the store at a point in time: session,
// entity collections, and UI-selection state. It is what gets persisted as a
// single blob and what derivation functions read.
type Snapshot struct {
	User                   *model.User            `json:"user"`
	Accounts               []model.Account        `json:"accounts"`
	Transactions           []model.Transaction    `json:"transactions"`
	Categories             []model.Category       `json:"categories"`
	IsAuthenticated        bool                   `json:"isAuthenticated"`
	RegisteredUsers        []model.RegisteredUser `json:"registeredUsers"`
	ActiveTab              model.Tab              `json:"activeTab"`
	IsTransactionModalOpen bool                   `json:"isTransactionModalOpen"`
	TransactionModalType   model.TransactionType  `json:"transactionModalType"`
	IsAddAccountModalOpen  bool                   `json:"isAddAccountModalOpen"`
	AccountsSortOrder      model.SortOrder        `json:"accountsSortOrder"`
}

// Clone returns a deep copy so holders of a snapshot can never reach back
// into the store's collections.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Accounts = append([]model.Account(nil), s.Accounts...)
	out.Transactions = append([]model.Transaction(nil), s.Transactions...)
	out.Categories = append([]model.Category(nil), s.Categories...)
	out.RegisteredUsers = make([]model.RegisteredUser, len(s.RegisteredUsers))
	for i, ru := range s.RegisteredUsers {
		ru.PasswordHash = append([]byte(nil), ru.PasswordHash...)
		out.RegisteredUsers[i] = ru
	}
	return out
}

// NewSnapshot returns the unauthenticated empty state the store boots into
// when nothing was persisted.
func NewSnapshot() Snapshot {
	return Snapshot{
		ActiveTab:         model.TabHome,
		AccountsSortOrder: model.SortDefault,
	}
}
