package service

import (
	"log/slog"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/domain"
	"github.com/web3privacy/ideas-server/internal/errors"
)

// OrganizationPage is the landing page payload for a single organization:
// its details plus every idea it sponsors.
type OrganizationPage struct {
	Organization domain.OrganizationDetails `json:"organization"`
	Ideas        []IdeaView                 `json:"ideas"`
}

// OrganizationService serves organization landing pages.
type OrganizationService struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewOrganizationService creates an organization service.
func NewOrganizationService(store *catalog.Store, logger *slog.Logger) *OrganizationService {
	return &OrganizationService{store: store, logger: logger}
}

// Get looks up an organization by its name slug.
func (s *OrganizationService) Get(slug string) (OrganizationPage, error) {
	details, ideas, ok := s.store.Snapshot().Organization(slug)
	if !ok {
		return OrganizationPage{}, errors.NotFoundf("organization not found: %s", slug)
	}

	views := make([]IdeaView, len(ideas))
	for i, idea := range ideas {
		views[i] = NewIdeaView(idea)
	}

	return OrganizationPage{Organization: details, Ideas: views}, nil
}
