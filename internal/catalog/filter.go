package catalog

import (
	"math/rand/v2"
	"slices"

	"github.com/web3privacy/ideas-server/internal/domain"
)

// FilterByTags narrows a pool to ideas whose categories intersect the
// selected tags. Tag membership is OR across the selection: matching any one
// selected tag passes. An empty selection is the identity and returns the
// pool unchanged.
func FilterByTags(pool []domain.Idea, tags []string) []domain.Idea {
	if len(tags) == 0 {
		return pool
	}

	filtered := make([]domain.Idea, 0, len(pool))
	for _, idea := range pool {
		if idea.HasAnyCategory(tags) {
			filtered = append(filtered, idea)
		}
	}
	return filtered
}

// ToggleTag flips a tag in a selection: selecting an already-selected tag
// removes it, otherwise it is appended. The input slice is not mutated.
// There is no upper bound on simultaneous selections.
func ToggleTag(selected []string, tag string) []string {
	if i := slices.Index(selected, tag); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	return append(slices.Clone(selected), tag)
}

// PickRandom draws one idea uniformly at random from the pool. An empty pool
// returns false; a single-element pool always returns that element.
// rand.IntN performs an unbiased draw over [0, len).
func PickRandom(pool []domain.Idea) (domain.Idea, bool) {
	if len(pool) == 0 {
		return domain.Idea{}, false
	}
	return pool[rand.IntN(len(pool))], true
}

// FeaturedOnly returns the subset of the pool flagged as featured.
func FeaturedOnly(pool []domain.Idea) []domain.Idea {
	featured := make([]domain.Idea, 0)
	for _, idea := range pool {
		if idea.Featured {
			featured = append(featured, idea)
		}
	}
	return featured
}
