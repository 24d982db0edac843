// Package store implements the single authoritative state container for the
// client: session, entity collections, and UI-selection state, with atomic
// mutation operations that commit the full snapshot to a persister after
// every change.
//
// All operations run synchronously on the UI event loop; state transitions
// complete before the next event is processed, so the store takes no locks.
package store

import (
	"context"
	"time"

	"github.com/zerodividas/zerodividas/internal/common"
	"github.com/zerodividas/zerodividas/internal/model"
)

// Persister receives the snapshot after every mutation, together with the
// names of the top-level keys that changed. Batching and debounce policy is
// the persister's business; the store just reports commits.
type Persister interface {
	Persist(ctx context.Context, snap Snapshot, changed []string) error
}

// Loader resumes a previously persisted snapshot. The second return is false
// when nothing was stored yet.
type Loader interface {
	Load(ctx context.Context) (Snapshot, bool, error)
}

// Dataset is what the seeder hands the store on first demo login.
type Dataset struct {
	User         model.User
	Accounts     []model.Account
	Transactions []model.Transaction
	Categories   []model.Category
}

// SeedFunc produces a consistent starting dataset for the demo identity.
type SeedFunc func(now time.Time) Dataset

// Store owns every entity collection exclusively. Views read snapshots and
// invoke mutations; nothing else may change the collections.
type Store struct {
	persister Persister
	seeder    SeedFunc
	defaults  []model.Category
	now       func() time.Time
	snap      Snapshot
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithSnapshot boots the store from a previously persisted snapshot.
func WithSnapshot(snap Snapshot) Option {
	return func(s *Store) { s.snap = snap }
}

// WithSeeder installs the demo-login data seeder.
func WithSeeder(seed SeedFunc) Option {
	return func(s *Store) { s.seeder = seed }
}

// WithDefaultCategories sets the category list handed to freshly logged-in
// registered users.
func WithDefaultCategories(categories []model.Category) Option {
	return func(s *Store) { s.defaults = categories }
}

// WithClock overrides the time source. Tests pin "now" with this.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New constructs a store around the given persister. A nil persister is
// valid and keeps all state in memory only.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		now:       time.Now,
		snap:      NewSnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snap.Clone()
}

// Reset restores the unauthenticated empty state and commits it. Mainly a
// testing and troubleshooting affordance; logout does not do this.
func (s *Store) Reset() {
	s.snap = NewSnapshot()
	s.commit(KeyUser, KeyAccounts, KeyTransactions, KeyCategories,
		KeyIsAuthenticated, KeyRegisteredUsers, KeyActiveTab,
		KeyIsTransactionModalOpen, KeyTransactionModalType,
		KeyIsAddAccountModalOpen, KeyAccountsSortOrder)
}

// User returns a copy of the session user, or nil before first login.
func (s *Store) User() *model.User {
	if s.snap.User == nil {
		return nil
	}
	u := *s.snap.User
	return &u
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool { return s.snap.IsAuthenticated }

// Accounts returns a copy of the account collection in insertion order.
func (s *Store) Accounts() []model.Account {
	return append([]model.Account(nil), s.snap.Accounts...)
}

// Transactions returns a copy of the transaction collection in insertion
// order.
func (s *Store) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.snap.Transactions...)
}

// Categories returns a copy of the category collection in insertion order.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.snap.Categories...)
}

// ActiveTab returns the currently selected view tab.
func (s *Store) ActiveTab() model.Tab { return s.snap.ActiveTab }

// AccountsSortOrder returns the ledger sort selection.
func (s *Store) AccountsSortOrder() model.SortOrder { return s.snap.AccountsSortOrder }

// commit hands a deep copy of the snapshot to the persister. Persistence
// failure does not roll anything back; the in-memory state is authoritative
// and the failure is only logged.
func (s *Store) commit(changed ...string) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Persist(context.Background(), s.snap.Clone(), changed); err != nil {
		common.LogError(err, "Failed to persist snapshot", common.Fields{"changed": changed})
	}
}
