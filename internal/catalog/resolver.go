package catalog

import (
	"fmt"

	"github.com/web3privacy/ideas-server/internal/domain"
	"github.com/web3privacy/ideas-server/internal/util"
)

// AssignID stamps a stable identifier onto an idea. An id already present in
// the source data is authoritative and never overwritten. Otherwise the id is
// derived deterministically from the origin type, the name slug, and the
// idea's zero-based position within its own collection:
//
//	{origin}-{slug(name)}-{index}
//
// An all-punctuation name slugs to "", which still gets the suffix
// ("community--0"), so every loaded idea ends up with a non-empty id.
func AssignID(idea domain.Idea, index int, origin domain.IdeaType) domain.Idea {
	if idea.ID != "" {
		return idea
	}
	idea.ID = fmt.Sprintf("%s-%s-%d", origin, util.Slugify(idea.Name), index)
	return idea
}

// Resolve finds an idea by permalink query across all collections, in stable
// order (community, expert, organization; first match wins):
//
//  1. Exact match on the stored/derived id.
//  2. Fallback: the query equals the idea's name slug, or the name slug with
//     a "-0" suffix. The second clause tolerates historical links minted when
//     index suffixes were assumed to be zero; it is a compatibility shim, not
//     a general rule.
//
// A miss returns false; not-found is a representable result the caller
// branches on, never an error.
func (s *Snapshot) Resolve(query string) (domain.Idea, bool) {
	all := s.All()

	for _, idea := range all {
		if idea.ID == query {
			return idea, true
		}
	}

	for _, idea := range all {
		nameSlug := util.Slugify(idea.Name)
		if nameSlug == query || nameSlug+"-0" == query {
			return idea, true
		}
	}

	return domain.Idea{}, false
}
