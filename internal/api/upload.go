package api

import (
	"io"
	"net/http"
	"strings"
)

// maxUploadBytes caps uploaded files at 1 MiB. Notes are text; anything
// larger is not a note.
const maxUploadBytes = 1 << 20

// uploadResponse carries the extracted note fields back to the client,
// which then submits them through /note/save.
type uploadResponse struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Title   string `json:"title"`
}

// upload accepts a multipart .txt or .md file and returns its text
// content with a title derived from the filename. The file is read
// entirely in memory and never written to disk.
func (h *noteHandler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Encountered error when receiving file. Try again.")
		return
	}
	defer file.Close()

	filename := header.Filename
	if filename == "" {
		writeMessage(w, http.StatusBadRequest, "No file selected. Try again.")
		return
	}

	if !allowedUploadName(filename) {
		writeMessage(w, http.StatusBadRequest, "Invalid file format. Only 'txt' and 'md' files allowed. Try again.")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Encountered error when receiving file. Try again.")
		return
	}

	h.logger.Info("file uploaded", "filename", filename, "bytes", len(content))
	writeJSON(w, http.StatusOK, uploadResponse{
		Message: "File received successfully.",
		Content: string(content),
		// The client-supplied filename is only ever used to derive the
		// title, never as a path.
		Title: filename[:strings.IndexByte(filename, '.')],
	})
}

// allowedUploadName reports whether the filename has a .txt or .md
// extension (case-insensitive).
func allowedUploadName(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	switch strings.ToLower(filename[i+1:]) {
	case "txt", "md":
		return true
	}
	return false
}
