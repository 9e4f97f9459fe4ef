package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/web3privacy/ideas-server/internal/http/response"
)

// handleGetOrganization returns an organization landing page by name slug.
func (s *Server) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, "Organization slug is required", s.logger)
		return
	}

	page, err := s.orgService.Get(slug)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}
