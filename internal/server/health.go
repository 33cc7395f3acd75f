package server

import "net/http"

// handleUp is the liveness probe. It must answer 200 whether or not the
// database or object store are reachable, so it consults neither.
func (s *Server) handleUp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("200 OK"))
}
