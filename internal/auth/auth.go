// Package auth implements authentication as a pure function over a
// credential store, decoupled from the session state. Registered users carry
// bcrypt hashes; the demo identity is a fixed sentinel credential.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/zerodividas/zerodividas/internal/model"
)

// Demo sentinel credential. Logging in with it seeds the demo dataset.
const (
	DemoEmail    = "demo@zerodividas.com"
	DemoPassword = "password"
)

// CredentialStore looks up registered users by email.
type CredentialStore interface {
	Find(email string) (model.RegisteredUser, bool)
}

// IsDemo reports whether the credentials match the demo sentinel exactly.
func IsDemo(email, password string) bool {
	return email == DemoEmail && password == DemoPassword
}

// Authenticate matches email and password against the credential store.
// It reports failure for unknown emails and wrong passwords alike.
func Authenticate(creds CredentialStore, email, password string) (model.RegisteredUser, bool) {
	user, ok := creds.Find(email)
	if !ok {
		return model.RegisteredUser{}, false
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return model.RegisteredUser{}, false
	}
	return user, true
}

// HashPassword produces the bcrypt hash stored on a RegisteredUser.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
