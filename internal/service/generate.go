package service

import (
	"context"
	"encoding/json/v2"
	"log/slog"
	"time"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/chat"
	"github.com/web3privacy/ideas-server/internal/domain"
	"github.com/web3privacy/ideas-server/internal/errors"
	"github.com/web3privacy/ideas-server/internal/id"
)

// Completer is the outbound chat dependency of the generate flow.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GeneratedIdea is a model-produced idea. basedOn carries the examples the
// model cites as inspiration, when it does.
type GeneratedIdea struct {
	domain.Idea
	BasedOn []domain.Idea `json:"basedOn,omitempty"`
}

// GenerateRequest is the generate endpoint's request body. Presence of
// keywords is checked in Generate so the legacy error message survives; the
// validate tag only caps runaway prompt sizes.
type GenerateRequest struct {
	Keywords string `json:"keywords" validate:"max=2000"`
}

// GenerateService produces new ideas from keywords through the chat backend,
// seeding the model with the expert collection.
type GenerateService struct {
	completer Completer
	store     *catalog.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewGenerateService creates a generate service.
func NewGenerateService(completer Completer, store *catalog.Store, logger *slog.Logger) *GenerateService {
	return &GenerateService{
		completer: completer,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate asks the chat backend for a new idea based on keywords.
//
// The error messages here are a fixed vocabulary callers rely on: presence
// check only on keywords (whitespace passes), a missing API key fails before
// any upstream call, and upstream failures surface as 500 without leaking
// the upstream status.
func (s *GenerateService) Generate(ctx context.Context, req GenerateRequest) (GeneratedIdea, error) {
	if req.Keywords == "" {
		return GeneratedIdea{}, errors.Validation("missing keywords")
	}

	if !s.completer.Configured() {
		return GeneratedIdea{}, errors.Internal("Internal Server Error")
	}

	systemPrompt, err := chat.SystemPrompt(s.store.Snapshot().Expert)
	if err != nil {
		return GeneratedIdea{}, errors.Internal("Internal Server Error").WithCause(err)
	}

	content, err := s.completer.Complete(ctx, systemPrompt, chat.UserPrompt(req.Keywords, s.now()))
	if err != nil {
		return GeneratedIdea{}, err
	}

	var generated GeneratedIdea
	if err := json.Unmarshal([]byte(content), &generated); err != nil {
		s.logger.Warn("model output is not valid JSON", "error", err)
		return GeneratedIdea{}, errors.Upstream("failed to parse AI response as JSON")
	}

	generated.ID = id.MustGenerate("generated")

	s.logger.Info("generated idea",
		"id", generated.ID,
		"name", generated.Name,
		"based_on", len(generated.BasedOn),
	)

	return generated, nil
}
