package api

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// messageResponse is the body of every status-only response, success or
// failure alike.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes v into a buffer before touching the ResponseWriter,
// so an encoding failure can still become a clean 500 instead of a
// half-written body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"message":"Internal server error."}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// writeMessage writes a single-message JSON body with the given status.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeInternalError hides the cause behind a uniform 500 body.
func writeInternalError(w http.ResponseWriter) {
	writeMessage(w, http.StatusInternalServerError, "Internal server error.")
}
