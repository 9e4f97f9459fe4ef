// Package service orchestrates catalog, search, and generation operations
// behind the HTTP handlers.
package service

import (
	"log/slog"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/domain"
	"github.com/web3privacy/ideas-server/internal/errors"
)

// IdeaView is an idea enriched with its classified variant. The variant is
// inferred from content, which can differ from the collection the idea was
// loaded from.
type IdeaView struct {
	domain.Idea
	Variant domain.IdeaType `json:"variant"`
}

// NewIdeaView classifies an idea into a view.
func NewIdeaView(idea domain.Idea) IdeaView {
	return IdeaView{Idea: idea, Variant: idea.Classify()}
}

// ListParams narrows and pages the idea listing.
type ListParams struct {
	Type     string   // Origin collection ("" = all)
	Tags     []string // OR-filter on categories
	Featured bool     // Only featured ideas
	Page     int      // 1-based, clamped
	Limit    int      // Page size override; 0 uses the configured default
}

// IdeaService serves catalog reads.
type IdeaService struct {
	store    *catalog.Store
	pageSize int
	logger   *slog.Logger
}

// NewIdeaService creates an idea service.
func NewIdeaService(store *catalog.Store, pageSize int, logger *slog.Logger) *IdeaService {
	return &IdeaService{
		store:    store,
		pageSize: pageSize,
		logger:   logger,
	}
}

// pool selects and filters the working set for params.
func (s *IdeaService) pool(params ListParams) ([]domain.Idea, error) {
	if params.Type != "" && !domain.IdeaType(params.Type).Valid() {
		return nil, errors.Validation("unknown idea type: " + params.Type)
	}

	snap := s.store.Snapshot()

	var pool []domain.Idea
	if params.Type == "" {
		pool = snap.All()
	} else {
		pool = snap.Pool(domain.IdeaType(params.Type))
	}

	pool = catalog.FilterByTags(pool, params.Tags)
	if params.Featured {
		pool = catalog.FeaturedOnly(pool)
	}
	return pool, nil
}

// List returns one page of ideas matching params.
func (s *IdeaService) List(params ListParams) (catalog.Page[IdeaView], error) {
	pool, err := s.pool(params)
	if err != nil {
		return catalog.Page[IdeaView]{}, err
	}

	views := make([]IdeaView, len(pool))
	for i, idea := range pool {
		views[i] = NewIdeaView(idea)
	}

	pageSize := s.pageSize
	if params.Limit > 0 {
		pageSize = params.Limit
	}

	return catalog.Paginate(views, pageSize, params.Page), nil
}

// Get resolves a single idea by id, accepting the legacy name-slug forms.
func (s *IdeaService) Get(id string) (IdeaView, error) {
	idea, ok := s.store.Snapshot().Resolve(id)
	if !ok {
		return IdeaView{}, errors.NotFoundf("idea not found: %s", id)
	}
	return NewIdeaView(idea), nil
}

// Random picks a uniformly random idea from the filtered pool.
func (s *IdeaService) Random(params ListParams) (IdeaView, error) {
	pool, err := s.pool(params)
	if err != nil {
		return IdeaView{}, err
	}

	idea, ok := catalog.PickRandom(pool)
	if !ok {
		return IdeaView{}, errors.NotFound("no ideas match the given filters")
	}
	return NewIdeaView(idea), nil
}

// Tags returns the sorted union of category tags across all collections.
func (s *IdeaService) Tags() []string {
	return s.store.Snapshot().AllTags()
}
