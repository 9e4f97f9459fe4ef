package search

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/web3privacy/ideas-server/internal/domain"
)

// Index wraps an in-memory Bleve index over the idea catalog.
//
// Thread safety: all public methods are safe for concurrent use. Rebuild
// swaps the whole index under an exclusive lock, so a reload never leaves
// stale documents behind.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewIndex creates an empty in-memory search index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Index{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// DocumentCount returns the total number of indexed documents.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Rebuild replaces the index contents with the given ideas. The old index is
// kept serving until the replacement is fully populated, then swapped in.
func (s *Index) Rebuild(ideas []domain.Idea) error {
	replacement, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	const batchSize = 500

	for i := 0; i < len(ideas); i += batchSize {
		end := min(i+batchSize, len(ideas))

		batch := replacement.NewBatch()
		for _, idea := range ideas[i:end] {
			doc := FromIdea(idea)
			// Convert to map to ensure field names match the mapping (lowercase)
			if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
				_ = replacement.Close()
				return fmt.Errorf("batch index %s: %w", doc.ID, err)
			}
		}

		if err := replacement.Batch(batch); err != nil {
			_ = replacement.Close()
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	s.mu.Lock()
	old := s.index
	s.index = replacement
	s.mu.Unlock()

	if err := old.Close(); err != nil {
		s.logger.Warn("failed to close replaced search index", "error", err)
	}

	s.logger.Info("rebuilt search index", "documents", len(ideas))
	return nil
}
