package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const downloadTimeout = 5 * time.Minute

// handleDownload fetches an object by name and streams it back as a browser
// download. Every backend failure, a missing key included, collapses into
// the same 500 error path.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !validObjectKey(name) {
		writeAPIError(w, errBadObjectKey())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), downloadTimeout)
	defer cancel()

	data, err := s.store.Get(ctx, name)
	if err != nil {
		s.log.Error("download failed", map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
			"key":        name,
		}, err)
		s.metrics.RecordDownloadError()
		writeAPIError(w, errDownload(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	s.metrics.RecordDownload(int64(len(data)))
}
