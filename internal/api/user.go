package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkpad/inkpad/internal/note"
	"github.com/inkpad/inkpad/internal/user"
)

// userHandler serves the profile endpoints.
type userHandler struct {
	users    UserStore
	notes    NoteStore
	sessions SessionStore
	logger   *slog.Logger
}

// profileResponse is a username with a list of their notes.
type profileResponse struct {
	Name  string     `json:"name"`
	Notes []noteJSON `json:"notes"`
}

// me returns the caller's own profile with every note, private included.
func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	requester := requester(r, h.sessions)
	if requester == "" {
		writeMessage(w, http.StatusUnauthorized, "Log in to view all notes made on your account.")
		return
	}

	notes, err := h.notes.ListByOwner(r.Context(), requester)
	if err != nil {
		h.logger.Error("listing notes", "username", requester, "error", err)
		writeInternalError(w)
		return
	}

	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteJSON(n))
	}
	writeJSON(w, http.StatusOK, profileResponse{Name: requester, Notes: out})
}

// profile returns a user's public notes. Viewing your own profile
// redirects to /user/me, which includes private notes too.
func (h *userHandler) profile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if requester(r, h.sessions) == username {
		http.Redirect(w, r, "/user/me", http.StatusFound)
		return
	}

	u, err := h.users.Get(r.Context(), username)
	if errors.Is(err, user.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		h.logger.Error("looking up user", "username", username, "error", err)
		writeInternalError(w)
		return
	}

	notes, err := h.notes.ListByOwner(r.Context(), u.Username)
	if err != nil {
		h.logger.Error("listing notes", "username", username, "error", err)
		writeInternalError(w)
		return
	}

	out := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		if n.Visibility == note.VisibilityPublic {
			out = append(out, toNoteJSON(n))
		}
	}
	writeJSON(w, http.StatusOK, profileResponse{Name: u.Username, Notes: out})
}
