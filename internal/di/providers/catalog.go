package providers

import (
	"github.com/samber/do/v2"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/logger"
	"github.com/web3privacy/ideas-server/internal/service"
)

// ProvideStore provides the catalog store. No data is loaded here; the
// catalog bootstrap performs the initial load after all snapshot subscribers
// are registered.
func ProvideStore(i do.Injector) (*catalog.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return catalog.NewStore(cfg.Catalog.DataDir, log.Logger), nil
}

// CatalogBootstrap owns the initial collection load and the data watcher.
type CatalogBootstrap struct {
	watcher *catalog.Watcher
}

// Shutdown implements do.Shutdownable.
func (b *CatalogBootstrap) Shutdown() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Stop()
}

// ProvideCatalogBootstrap loads the collections and starts the file watcher.
// Depending on the search service first guarantees the index subscription is
// in place before the initial snapshot swap.
func ProvideCatalogBootstrap(i do.Injector) (*CatalogBootstrap, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*catalog.Store](i)
	_ = do.MustInvoke[*service.SearchService](i)

	store.LoadAll()

	if !cfg.Catalog.WatchData {
		return &CatalogBootstrap{}, nil
	}

	watcher, err := catalog.NewWatcher(store, log.Logger)
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(); err != nil {
		// Non-fatal: the server works without live reloads.
		log.Warn("data watcher unavailable", "error", err)
		_ = watcher.Stop()
		return &CatalogBootstrap{}, nil
	}

	return &CatalogBootstrap{watcher: watcher}, nil
}
