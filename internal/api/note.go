package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/inkpad/inkpad/internal/note"
)

// noteHandler serves note creation, reading, editing, and deletion.
type noteHandler struct {
	notes    NoteStore
	sessions SessionStore
	logger   *slog.Logger
}

// noteBody is the request body for creating and editing notes.
type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// noteJSON is the wire shape of a note. The owner and visibility are
// deliberately not exposed.
type noteJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteJSON(n note.Note) noteJSON {
	return noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// noteID parses the {id} path segment. Any non-numeric ID is treated as
// a note that does not exist rather than a malformed request.
func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (h *noteHandler) save(w http.ResponseWriter, r *http.Request) {
	// A request with no query string at all defaults to private; a query
	// string that lacks a valid view is rejected.
	view := "private"
	if r.URL.RawQuery != "" {
		view = r.URL.Query().Get("view")
	}
	visibility, ok := note.ParseVisibility(view)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "Incomplete request data.")
		return
	}

	requester := requester(r, h.sessions)
	if !note.CanCreate(visibility, requester) {
		writeMessage(w, http.StatusUnauthorized, "Log in to create private notes.")
		return
	}

	var body noteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" || body.Content == "" {
		writeMessage(w, http.StatusBadRequest, "Incomplete note data.")
		return
	}

	var owner *string
	if requester != "" {
		owner = &requester
	}

	n, err := h.notes.Create(r.Context(), owner, body.Title, body.Content, visibility)
	if err != nil {
		h.logger.Error("creating note", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("note created", "id", n.ID, "visibility", visibility)
	writeMessage(w, http.StatusOK, "Note added successfully.")
}

func (h *noteHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}

	n, err := h.notes.Get(r.Context(), id)
	if errors.Is(err, note.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}
	if err != nil {
		h.logger.Error("getting note", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	if !note.CanRead(n, requester(r, h.sessions)) {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized viewing of private notes is not allowed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]noteJSON{"note": toNoteJSON(n)})
}

func (h *noteHandler) edit(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}

	n, err := h.notes.Get(r.Context(), id)
	if errors.Is(err, note.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}
	if err != nil {
		h.logger.Error("getting note", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	if !note.CanModify(n, requester(r, h.sessions)) {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized editing of private notes is not allowed.")
		return
	}

	var body noteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" || body.Content == "" {
		writeMessage(w, http.StatusBadRequest, "Incomplete update details.")
		return
	}

	if err := h.notes.Update(r.Context(), id, body.Title, body.Content); err != nil {
		// A concurrent delete between the read and the write surfaces
		// here; report it the same as any other missing note.
		if errors.Is(err, note.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note does not exist.")
			return
		}
		h.logger.Error("updating note", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("note edited", "id", id)
	writeMessage(w, http.StatusOK, "Note edited successfully.")
}

func (h *noteHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}

	n, err := h.notes.Get(r.Context(), id)
	if errors.Is(err, note.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Note does not exist.")
		return
	}
	if err != nil {
		h.logger.Error("getting note", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	if !note.CanModify(n, requester(r, h.sessions)) {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized deletion of private notes is not allowed.")
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Note does not exist.")
			return
		}
		h.logger.Error("deleting note", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("note deleted", "id", id)
	writeMessage(w, http.StatusOK, "Note deleted successfully.")
}
