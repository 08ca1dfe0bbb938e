package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/adprintpro/storefront/internal/uploads"
)

type UploadHandler struct {
	store *uploads.MemoryStore
}

func NewUploadHandler(store *uploads.MemoryStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Create accepts a multipart design file under the "file" field and
// returns its opaque reference for use in a cart item.
func (h *UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Cap the whole request body slightly above the file limit.
	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxUploadSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read file")
		return
	}

	upload, err := h.store.Put(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrUploadTooLarge):
			respondError(w, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 50MB limit")
		case errors.Is(err, uploads.ErrUnsupportedFormat):
			respondError(w, http.StatusUnsupportedMediaType, "unsupported_format", "supported formats: PDF, AI, PSD, JPG, PNG")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, upload)
}
