package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func owned(owner string, v Visibility) Note {
	return Note{Owner: &owner, Visibility: v}
}

func anonymous(v Visibility) Note {
	return Note{Owner: nil, Visibility: v}
}

func TestCanRead(t *testing.T) {
	tests := []struct {
		name      string
		note      Note
		requester string
		want      bool
	}{
		{"public note, anonymous", anonymous(VisibilityPublic), "", true},
		{"public note, stranger", owned("alice", VisibilityPublic), "bob", true},
		{"public note, owner", owned("alice", VisibilityPublic), "alice", true},
		{"private note, owner", owned("alice", VisibilityPrivate), "alice", true},
		{"private note, stranger", owned("alice", VisibilityPrivate), "bob", false},
		{"private note, anonymous", owned("alice", VisibilityPrivate), "", false},
		// Private notes always have an owner by invariant, but a nil
		// owner must still never match.
		{"private ownerless note, anonymous", anonymous(VisibilityPrivate), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRead(tt.note, tt.requester))
		})
	}
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name      string
		note      Note
		requester string
		want      bool
	}{
		{"owner", owned("alice", VisibilityPrivate), "alice", true},
		{"owner of public note", owned("alice", VisibilityPublic), "alice", true},
		{"stranger", owned("alice", VisibilityPrivate), "bob", false},
		{"anonymous caller", owned("alice", VisibilityPublic), "", false},
		// An anonymous public note has no owner: nobody can touch it.
		{"anonymous note, logged-in caller", anonymous(VisibilityPublic), "alice", false},
		{"anonymous note, anonymous caller", anonymous(VisibilityPublic), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.note, tt.requester))
		})
	}
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(VisibilityPublic, ""))
	assert.True(t, CanCreate(VisibilityPublic, "alice"))
	assert.True(t, CanCreate(VisibilityPrivate, "alice"))
	assert.False(t, CanCreate(VisibilityPrivate, ""))
}

func TestParseVisibility(t *testing.T) {
	v, ok := ParseVisibility("private")
	assert.True(t, ok)
	assert.Equal(t, VisibilityPrivate, v)

	v, ok = ParseVisibility("public")
	assert.True(t, ok)
	assert.Equal(t, VisibilityPublic, v)

	for _, s := range []string{"", "Private", "PUBLIC", "shared", "none"} {
		_, ok := ParseVisibility(s)
		assert.False(t, ok, "ParseVisibility(%q)", s)
	}
}
