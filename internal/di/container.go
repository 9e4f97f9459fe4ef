// Package di provides dependency injection configuration for the ideas server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/di/providers"
	"github.com/web3privacy/ideas-server/internal/logger"
	"github.com/web3privacy/ideas-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Catalog layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideCatalogBootstrap)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Chat layer
	do.Provide(injector, providers.ProvideChatClient)

	// Business services
	do.Provide(injector, providers.ProvideIdeaService)
	do.Provide(injector, providers.ProvideOrganizationService)
	do.Provide(injector, providers.ProvideGenerateService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)

	// Loads the collections and starts the watcher; must come after the
	// search service so the initial snapshot swap reaches the index.
	_ = do.MustInvoke[*providers.CatalogBootstrap](injector)

	_ = do.MustInvoke[*service.IdeaService](injector)
	_ = do.MustInvoke[*service.OrganizationService](injector)
	_ = do.MustInvoke[*service.GenerateService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
