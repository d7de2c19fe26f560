// Package session persists login sessions keyed by an opaque bearer token.
//
// A user has at most one active session: creating a session deletes any
// prior session for the same username. Sessions are valid until deleted
// unless the store is configured with a TTL.
package session

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a token resolves to no live session.
var ErrNotFound = errors.New("session not found")

// Session binds an opaque token to an authenticated username.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}
