package model

// User is the identity of the authenticated session. Created at signup or
// demo login and immutable afterwards; the store exposes no update path.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// RegisteredUser backs the demo signup/login flow. It is not a first-class
// domain entity: it carries a bcrypt hash of the password and exists only so
// the authentication layer has something to match against.
type RegisteredUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
}
