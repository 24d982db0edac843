package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerodividas/zerodividas/internal/model"
)

type mapStore map[string]model.RegisteredUser

func (m mapStore) Find(email string) (model.RegisteredUser, bool) {
	u, ok := m[email]
	return u, ok
}

func TestAuthenticate(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	creds := mapStore{
		"maria@example.com": {ID: "u1", Name: "Maria", Email: "maria@example.com", PasswordHash: hash},
	}

	t.Run("correct credentials succeed", func(t *testing.T) {
		user, ok := Authenticate(creds, "maria@example.com", "s3cret")
		require.True(t, ok)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, ok := Authenticate(creds, "maria@example.com", "wrong")
		assert.False(t, ok)
	})

	t.Run("unknown email fails", func(t *testing.T) {
		_, ok := Authenticate(creds, "nobody@example.com", "s3cret")
		assert.False(t, ok)
	})
}

func TestIsDemo(t *testing.T) {
	assert.True(t, IsDemo(DemoEmail, DemoPassword))
	assert.False(t, IsDemo(DemoEmail, "wrong"))
	assert.False(t, IsDemo("other@zerodividas.com", DemoPassword))
}

func TestHashPassword_NotPlaintext(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", string(hash))
}
