package docs

import (
	"log/slog"
	"net/http"
	"os"
)

// DescriptionHandler serves the API description file as-is.
type DescriptionHandler struct {
	file string
}

func NewDescriptionHandler(file string) *DescriptionHandler {
	return &DescriptionHandler{file: file}
}

func (h *DescriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.file)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to read api description", "file", h.file, "error", err)
		writePlain(w, http.StatusInternalServerError, "Cannot load swagger.json")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.WarnContext(r.Context(), "docs: failed to write api description", "error", err)
	}
}
