package domain

import "time"

// User is the public projection of an account. It never carries the password hash.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserCredentials is the credential-bearing read used by login.
type UserCredentials struct {
	User
	PasswordHash string
}

// NewUser holds the fields persisted on registration.
type NewUser struct {
	Username     string
	PasswordHash string
}
