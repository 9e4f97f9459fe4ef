package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/web3privacy/ideas-server/internal/http/response"
	"github.com/web3privacy/ideas-server/internal/service"
)

// parseListParams reads the shared filter parameters from the query string.
// Unparsable values fall back to defaults rather than erroring; only an
// unknown type is rejected, and that happens in the service.
func parseListParams(r *http.Request) service.ListParams {
	q := r.URL.Query()

	params := service.ListParams{
		Type:     q.Get("type"),
		Featured: q.Get("featured") == "true",
		Page:     1,
	}

	if tags := q.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				params.Tags = append(params.Tags, tag)
			}
		}
	}

	if pageStr := q.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			params.Page = page
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			params.Limit = limit
		}
	}

	return params
}

// handleListIdeas returns one page of ideas matching the query filters.
func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	page, err := s.ideaService.List(parseListParams(r))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}

// handleRandomIdea returns a uniformly random idea from the filtered pool.
func (s *Server) handleRandomIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.ideaService.Random(parseListParams(r))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, idea, s.logger)
}

// handleGetIdea returns a single idea by id or legacy name slug.
func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Idea ID is required", s.logger)
		return
	}

	idea, err := s.ideaService.Get(id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, idea, s.logger)
}

// handleListTags returns the sorted union of category tags.
func (s *Server) handleListTags(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, s.ideaService.Tags(), s.logger)
}
