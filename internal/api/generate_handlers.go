package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/web3privacy/ideas-server/internal/http/response"
	"github.com/web3privacy/ideas-server/internal/service"
)

// handleGenerate proxies a keyword prompt to the chat backend and returns the
// generated idea. The route is rate limited per client IP.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Missing request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	generated, err := s.generateService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, generated, s.logger)
}
