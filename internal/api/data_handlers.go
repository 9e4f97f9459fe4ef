package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/web3privacy/ideas-server/internal/http/response"
)

// handleDataFile serves a raw collection file. Only the three known file
// names resolve; everything else is a 404. No caching, so clients pick up
// edits as soon as the watcher does.
func (s *Server) handleDataFile(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	data, err := s.store.ReadCollectionFile(file)
	if err != nil {
		response.NotFound(w, "collection file not found", s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}
