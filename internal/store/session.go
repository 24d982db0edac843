package store

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/zerodividas/zerodividas/internal/auth"
	"github.com/zerodividas/zerodividas/internal/model"
)

// credentials adapts the registered-user collection to auth.CredentialStore.
type credentials []model.RegisteredUser

func (c credentials) Find(email string) (model.RegisteredUser, bool) {
	for _, ru := range c {
		if ru.Email == email {
			return ru, true
		}
	}
	return model.RegisteredUser{}, false
}

// Login authenticates either the demo sentinel identity or a registered
// user. The demo branch seeds the mock dataset on first login and is
// idempotent afterwards. The registered branch always starts from a fresh
// empty entity state with a reset copy of the default categories; registered
// users do not keep data across logout/login cycles. A failed match returns
// false without touching any state.
func (s *Store) Login(email, password string) bool {
	if auth.IsDemo(email, password) {
		if s.snap.User == nil || s.snap.User.Email != auth.DemoEmail {
			s.seedDemo()
			s.snap.IsAuthenticated = true
			s.commit(KeyUser, KeyAccounts, KeyTransactions, KeyCategories, KeyIsAuthenticated)
			return true
		}
		s.snap.IsAuthenticated = true
		s.commit(KeyIsAuthenticated)
		return true
	}

	registered, ok := auth.Authenticate(credentials(s.snap.RegisteredUsers), email, password)
	if !ok {
		return false
	}

	user := model.User{
		ID:    registered.ID,
		Name:  registered.Name,
		Email: registered.Email,
	}
	s.snap.User = &user
	s.snap.Accounts = nil
	s.snap.Transactions = nil
	s.snap.Categories = append([]model.Category(nil), s.defaults...)
	s.snap.IsAuthenticated = true
	s.commit(KeyUser, KeyAccounts, KeyTransactions, KeyCategories, KeyIsAuthenticated)
	return true
}

// Signup registers a new user. Duplicate emails fail without mutating
// anything. Signup does not log the new user in.
func (s *Store) Signup(name, email, password string) bool {
	for _, ru := range s.snap.RegisteredUsers {
		if ru.Email == email {
			return false
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return false
	}

	s.snap.RegisteredUsers = append(s.snap.RegisteredUsers, model.RegisteredUser{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	s.commit(KeyRegisteredUsers)
	return true
}

// Logout closes the session. It is a view-gate only: every entity collection
// stays resident in memory and in the persisted snapshot.
func (s *Store) Logout() {
	s.snap.IsAuthenticated = false
	s.commit(KeyIsAuthenticated)
}

// seedDemo populates the demo identity's starting dataset.
func (s *Store) seedDemo() {
	if s.seeder == nil {
		// Without a seeder the demo identity starts with just the
		// default categories.
		s.snap.User = &model.User{
			ID:    uuid.NewString(),
			Name:  "Demo",
			Email: auth.DemoEmail,
		}
		s.snap.Accounts = nil
		s.snap.Transactions = nil
		s.snap.Categories = append([]model.Category(nil), s.defaults...)
		return
	}

	data := s.seeder(s.now())
	user := data.User
	s.snap.User = &user
	s.snap.Accounts = data.Accounts
	s.snap.Transactions = data.Transactions
	s.snap.Categories = data.Categories
	for i := range s.snap.Transactions {
		s.snap.Transactions[i].Normalize()
	}
}
