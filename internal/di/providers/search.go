package providers

import (
	"github.com/samber/do/v2"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/logger"
	"github.com/web3privacy/ideas-server/internal/search"
	"github.com/web3privacy/ideas-server/internal/service"
)

// SearchIndexHandle wraps the search index with Shutdownable.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewIndex(log.Logger)
	if err != nil {
		return nil, err
	}
	return &SearchIndexHandle{Index: index}, nil
}

// ProvideSearchService provides the search service and subscribes the index
// to snapshot swaps.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	store := do.MustInvoke[*catalog.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSearchService(indexHandle.Index, store, log.Logger), nil
}
