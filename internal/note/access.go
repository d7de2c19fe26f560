package note

// Access rules. The requester is the username resolved from the
// caller's session; the empty string means an anonymous caller.
// These are pure decisions — resolving the session and loading the note
// happen elsewhere.

// CanRead reports whether the requester may view the note: public notes
// are readable by anyone, private notes only by their owner.
func CanRead(n Note, requester string) bool {
	if n.Visibility == VisibilityPublic {
		return true
	}
	return isOwner(n, requester)
}

// CanModify reports whether the requester may edit or delete the note.
// Only the owner may; an anonymous note has no owner to match, so it is
// immutable for everyone.
func CanModify(n Note, requester string) bool {
	return isOwner(n, requester)
}

// CanCreate reports whether the requester may create a note with the
// given visibility. Private notes require a logged-in requester.
func CanCreate(v Visibility, requester string) bool {
	return v == VisibilityPublic || requester != ""
}

func isOwner(n Note, requester string) bool {
	return requester != "" && n.Owner != nil && *n.Owner == requester
}
