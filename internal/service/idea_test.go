package service

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/domain"
	"github.com/web3privacy/ideas-server/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStore loads a store from literal collection JSON.
func testStore(t *testing.T, community, expert, organization string) *catalog.Store {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		catalog.CommunityFile:    community,
		catalog.ExpertFile:       expert,
		catalog.OrganizationFile: organization,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	store := catalog.NewStore(dir, discardLogger())
	store.LoadAll()
	return store
}

func defaultTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	return testStore(t,
		`[
			{"name":"Private Voting","categories":["zk","governance"]},
			{"name":"Metadata Shield","categories":["messaging"],"featured":true},
			{"name":"Burner Wallets","categories":["payments"]},
			{"name":"Tor Relay Rewards","categories":["networking"]},
			{"name":"Sealed Bids","categories":["zk"]}
		]`,
		`[{"name":"Stealth Payments","categories":["payments"],"author":"https://twitter.com/alice"}]`,
		`[{"name":"Mixnet SDK","categories":["networking"],"organizationName":"Nym","organizationLogo":"https://nym.com/logo.svg"}]`,
	)
}

func TestIdeaService_List_PagesMergedPool(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	page, err := svc.List(ListParams{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 4)
	assert.Equal(t, "Private Voting", page.Items[0].Name)

	page, err = svc.List(ListParams{Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Mixnet SDK", page.Items[2].Name)
}

func TestIdeaService_List_TypeAndTags(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	page, err := svc.List(ListParams{Type: "community", Tags: []string{"zk"}, Page: 1})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Private Voting", page.Items[0].Name)
	assert.Equal(t, "Sealed Bids", page.Items[1].Name)
}

func TestIdeaService_List_Featured(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	page, err := svc.List(ListParams{Featured: true, Page: 1})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Metadata Shield", page.Items[0].Name)
}

func TestIdeaService_List_LimitOverride(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	page, err := svc.List(ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Items, 2)
}

func TestIdeaService_List_UnknownType(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	_, err := svc.List(ListParams{Type: "sponsor", Page: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestIdeaService_List_VariantFollowsContent(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 10, discardLogger())

	page, err := svc.List(ListParams{Page: 1})
	require.NoError(t, err)

	variants := make(map[string]domain.IdeaType)
	for _, view := range page.Items {
		variants[view.Name] = view.Variant
	}
	assert.Equal(t, domain.TypeCommunity, variants["Private Voting"])
	assert.Equal(t, domain.TypeExpert, variants["Stealth Payments"])
	assert.Equal(t, domain.TypeOrganization, variants["Mixnet SDK"])
}

func TestIdeaService_Get(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	view, err := svc.Get("community-private-voting-0")
	require.NoError(t, err)
	assert.Equal(t, "Private Voting", view.Name)

	// Legacy name-slug form.
	view, err = svc.Get("stealth-payments")
	require.NoError(t, err)
	assert.Equal(t, "Stealth Payments", view.Name)

	_, err = svc.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestIdeaService_Random(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	// A filter narrowing to one idea makes the pick deterministic.
	view, err := svc.Random(ListParams{Tags: []string{"messaging"}})
	require.NoError(t, err)
	assert.Equal(t, "Metadata Shield", view.Name)

	_, err = svc.Random(ListParams{Tags: []string{"no-such-tag"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestIdeaService_Tags(t *testing.T) {
	svc := NewIdeaService(defaultTestStore(t), 4, discardLogger())

	assert.Equal(t,
		[]string{"governance", "messaging", "networking", "payments", "zk"},
		svc.Tags(),
	)
}
