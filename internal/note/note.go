// Package note holds the note record, its visibility flag, the access
// rules gating who may read or change a note, and the PostgreSQL store.
package note

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no note matches the requested ID.
var ErrNotFound = errors.New("note not found")

// Visibility controls third-party read access to a note.
type Visibility string

const (
	// VisibilityPrivate restricts the note to its owner.
	VisibilityPrivate Visibility = "private"
	// VisibilityPublic makes the note readable by anyone.
	VisibilityPublic Visibility = "public"
)

// ParseVisibility maps the wire value to a Visibility.
func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(s) {
	case VisibilityPrivate, VisibilityPublic:
		return Visibility(s), true
	default:
		return "", false
	}
}

// Note is a stored note. Owner is nil for notes created anonymously;
// such notes are always public and can never be edited or deleted.
type Note struct {
	ID         int64
	Owner      *string
	Title      string
	Content    string
	Visibility Visibility
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
