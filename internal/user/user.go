// Package user persists account credentials.
package user

import (
	"errors"
	"time"
)

var (
	// ErrExists is returned when the username is already registered.
	ErrExists = errors.New("user already exists")

	// ErrNotFound is returned when no account matches the username.
	ErrNotFound = errors.New("user not found")
)

// User is a registered account. The password is stored only as an
// argon2id hash; accounts are never mutated or deleted.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
