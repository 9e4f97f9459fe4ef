package service

import (
	"context"
	"log/slog"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/errors"
	"github.com/web3privacy/ideas-server/internal/search"
)

// SearchHit pairs a resolved idea with its relevance score and highlights.
type SearchHit struct {
	IdeaView
	Score      float64           `json:"score"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// SearchResult is the search endpoint payload.
type SearchResult struct {
	Query  string         `json:"query"`
	Total  uint64         `json:"total"`
	TookMs int64          `json:"took_ms"`
	Hits   []SearchHit    `json:"hits"`
	Facets *search.Facets `json:"facets,omitempty"`
}

// SearchService runs full-text queries and resolves hits back to catalog
// ideas. It keeps the index in sync by rebuilding on every snapshot swap.
type SearchService struct {
	index  *search.Index
	store  *catalog.Store
	logger *slog.Logger
}

// NewSearchService creates a search service and subscribes it to store
// reloads. The initial index build happens on the first snapshot swap.
func NewSearchService(index *search.Index, store *catalog.Store, logger *slog.Logger) *SearchService {
	s := &SearchService{
		index:  index,
		store:  store,
		logger: logger,
	}

	store.OnSwap(func(snap *catalog.Snapshot) {
		if err := index.Rebuild(snap.All()); err != nil {
			logger.Error("failed to rebuild search index", "error", err)
		}
	})

	return s
}

// Search executes a query and resolves each hit against the current snapshot.
// Hits whose idea vanished between index build and lookup are dropped.
func (s *SearchService) Search(ctx context.Context, params search.Params) (SearchResult, error) {
	if params.Query == "" {
		return SearchResult{}, errors.Validation("missing query")
	}

	raw, err := s.index.Search(ctx, params)
	if err != nil {
		return SearchResult{}, errors.Wrap(err, errors.CodeInternal, "search failed")
	}

	snap := s.store.Snapshot()

	result := SearchResult{
		Query:  raw.Query,
		Total:  raw.Total,
		TookMs: raw.TookMs,
		Hits:   make([]SearchHit, 0, len(raw.Hits)),
		Facets: raw.Facets,
	}

	for _, hit := range raw.Hits {
		idea, ok := snap.Resolve(hit.ID)
		if !ok {
			continue
		}
		result.Hits = append(result.Hits, SearchHit{
			IdeaView:   NewIdeaView(idea),
			Score:      hit.Score,
			Highlights: hit.Highlights,
		})
	}

	return result, nil
}
