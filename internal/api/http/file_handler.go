package http

import (
	"io"
	"net/http"
	"strings"

	"vcg-backend/internal/storage"
)

// FileHandler serves documents back from local storage. Only wired when the
// local backend is in use; S3 objects are public at their bucket URL.
type FileHandler struct {
	local *storage.LocalStorageService
}

func NewFileHandler(local *storage.LocalStorageService) *FileHandler {
	return &FileHandler{local: local}
}

func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/files/")
	if key == "" {
		http.Error(w, "missing file key", http.StatusBadRequest)
		return
	}

	file, err := h.local.Open(key)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := io.Copy(w, file); err != nil {
		// Response already started; nothing sensible left to do
		return
	}
}
