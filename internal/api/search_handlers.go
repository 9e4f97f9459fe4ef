package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/web3privacy/ideas-server/internal/http/response"
	"github.com/web3privacy/ideas-server/internal/search"
)

// handleSearch runs a full-text query over the idea catalog.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.DefaultParams()
	params.Query = q.Get("q")

	if variants := q.Get("variant"); variants != "" {
		params.Variants = splitCSV(variants)
	}
	if tags := q.Get("tags"); tags != "" {
		params.Categories = splitCSV(tags)
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 100 {
			params.Limit = limit
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	result, err := s.searchService.Search(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}

func splitCSV(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
