// Package catalog owns the idea collections: loading them from the data
// directory, stamping stable ids, and the pure filtering/pagination/selection
// engines the API serves from.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/web3privacy/ideas-server/internal/domain"
)

// Collection file names inside the data directory.
const (
	CommunityFile    = "community-ideas.json"
	ExpertFile       = "expert-ideas.json"
	OrganizationFile = "organization-ideas.json"
)

// Snapshot is one immutable view of the three loaded collections. Every idea
// in a snapshot carries a non-empty id. Snapshots are never mutated after
// load; a reload builds a fresh one and swaps it in.
type Snapshot struct {
	Community         []domain.Idea
	Expert            []domain.Idea
	OrganizationIdeas []domain.Idea
}

// All returns the concatenated pool in stable order:
// community, then expert, then organization.
func (s *Snapshot) All() []domain.Idea {
	all := make([]domain.Idea, 0, len(s.Community)+len(s.Expert)+len(s.OrganizationIdeas))
	all = append(all, s.Community...)
	all = append(all, s.Expert...)
	all = append(all, s.OrganizationIdeas...)
	return all
}

// Pool returns the single collection matching the origin type. This partitions
// by origin collection, not by inferred variant; Classify on the individual
// ideas answers the other question.
func (s *Snapshot) Pool(t domain.IdeaType) []domain.Idea {
	switch t {
	case domain.TypeCommunity:
		return s.Community
	case domain.TypeExpert:
		return s.Expert
	case domain.TypeOrganization:
		return s.OrganizationIdeas
	default:
		return s.All()
	}
}

// AllTags returns the sorted unique union of every idea's categories.
func (s *Snapshot) AllTags() []string {
	seen := make(map[string]struct{})
	for _, idea := range s.All() {
		for _, cat := range idea.Categories {
			seen[cat] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Organization returns the landing page data for an organization slug: every
// idea whose organizationName slug matches, plus header details lifted from
// the first match. Returns false when no idea names the organization.
func (s *Snapshot) Organization(slug string) (domain.OrganizationDetails, []domain.Idea, bool) {
	var matches []domain.Idea
	for _, idea := range s.All() {
		if idea.OrgSlug() == slug {
			matches = append(matches, idea)
		}
	}

	if len(matches) == 0 {
		return domain.OrganizationDetails{}, nil, false
	}

	first := matches[0]
	details := domain.OrganizationDetails{
		Name:    first.OrganizationName,
		Logo:    first.OrganizationLogo,
		GitHub:  first.GitHub,
		Website: first.Website,
	}
	return details, matches, true
}

// Store loads and holds the current snapshot. All reads go through
// Snapshot(); LoadAll swaps atomically so readers never see a half-loaded
// state.
type Store struct {
	dataDir string
	logger  *slog.Logger

	mu     sync.RWMutex
	snap   *Snapshot
	onSwap []func(*Snapshot)
}

// NewStore creates a store reading collections from dataDir. No data is
// loaded until LoadAll is called.
func NewStore(dataDir string, logger *slog.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		logger:  logger,
		snap:    &Snapshot{},
	}
}

// DataDir returns the directory the collections are read from.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Snapshot returns the current snapshot. The returned value is shared and
// must be treated as read-only.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// OnSwap registers a callback invoked with every freshly loaded snapshot,
// including the initial load. Used by the search index to rebuild.
func (s *Store) OnSwap(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSwap = append(s.onSwap, fn)
}

// LoadAll reads the three collections concurrently and swaps in the new
// snapshot. Each load is independent: a missing or malformed file degrades to
// an empty collection for that slot and is logged, never propagated. The
// organization file is expected to be optionally absent.
func (s *Store) LoadAll() *Snapshot {
	snap := &Snapshot{}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Community = s.loadCollection(CommunityFile, domain.TypeCommunity)
	}()
	go func() {
		defer wg.Done()
		snap.Expert = s.loadCollection(ExpertFile, domain.TypeExpert)
	}()
	go func() {
		defer wg.Done()
		snap.OrganizationIdeas = s.loadCollection(OrganizationFile, domain.TypeOrganization)
	}()
	wg.Wait()

	s.mu.Lock()
	s.snap = snap
	subscribers := make([]func(*Snapshot), len(s.onSwap))
	copy(subscribers, s.onSwap)
	s.mu.Unlock()

	s.logger.Info("collections loaded",
		"community", len(snap.Community),
		"expert", len(snap.Expert),
		"organization", len(snap.OrganizationIdeas),
	)

	for _, fn := range subscribers {
		fn(snap)
	}

	return snap
}

// loadCollection reads one collection file and stamps ids. Failures degrade
// to an empty slice.
func (s *Store) loadCollection(filename string, origin domain.IdeaType) []domain.Idea {
	path := filepath.Join(s.dataDir, filename)

	data, err := os.ReadFile(path) //#nosec G304 -- Path is built from the configured data dir
	if err != nil {
		if os.IsNotExist(err) && origin == domain.TypeOrganization {
			// Soft case: deployments without organization ideas yet.
			s.logger.Info("no organization ideas yet", "path", path)
		} else {
			s.logger.Error("failed to read collection", "collection", string(origin), "error", err)
		}
		return []domain.Idea{}
	}

	var ideas []domain.Idea
	if err := json.Unmarshal(data, &ideas); err != nil {
		s.logger.Error("failed to parse collection", "collection", string(origin), "error", err)
		return []domain.Idea{}
	}

	for i := range ideas {
		ideas[i] = AssignID(ideas[i], i, origin)
	}
	return ideas
}

// ReadCollectionFile returns the raw bytes of one of the three collection
// files, for serving them as static assets. Unknown names are rejected so the
// handler can never read outside the data dir.
func (s *Store) ReadCollectionFile(filename string) ([]byte, error) {
	switch filename {
	case CommunityFile, ExpertFile, OrganizationFile:
	default:
		return nil, fmt.Errorf("unknown collection file: %s", filename)
	}
	return os.ReadFile(filepath.Join(s.dataDir, filename)) //#nosec G304 -- Name is allow-listed above
}
