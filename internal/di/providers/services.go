package providers

import (
	"github.com/samber/do/v2"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/chat"
	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/logger"
	"github.com/web3privacy/ideas-server/internal/service"
	"github.com/web3privacy/ideas-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideChatClient provides the outbound chat-completions client.
func ProvideChatClient(i do.Injector) (*chat.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := chat.NewClient(cfg.Chat, log.Logger)
	if !client.Configured() {
		log.Warn("CHAT_API_KEY is not set; the generate endpoint will answer 500")
	}
	return client, nil
}

// ProvideIdeaService provides the idea catalog service.
func ProvideIdeaService(i do.Injector) (*service.IdeaService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := do.MustInvoke[*catalog.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewIdeaService(store, cfg.Catalog.PageSize, log.Logger), nil
}

// ProvideOrganizationService provides the organization landing page service.
func ProvideOrganizationService(i do.Injector) (*service.OrganizationService, error) {
	store := do.MustInvoke[*catalog.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOrganizationService(store, log.Logger), nil
}

// ProvideGenerateService provides the idea generation service.
func ProvideGenerateService(i do.Injector) (*service.GenerateService, error) {
	client := do.MustInvoke[*chat.Client](i)
	store := do.MustInvoke[*catalog.Store](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGenerateService(client, store, log.Logger), nil
}
