package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/service"
)

func TestHealthCheck(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	env := decode[map[string]string](t, resp.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, "healthy", env.Data["status"])
}

func TestListIdeas_FirstPage(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[catalog.Page[service.IdeaView]](t, resp.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, 7, env.Data.Total)
	assert.Equal(t, 2, env.Data.TotalPages)
	assert.Equal(t, 1, env.Data.Page)
	require.Len(t, env.Data.Items, 4)
	assert.Equal(t, "Private Voting", env.Data.Items[0].Name)
	assert.Equal(t, "community-private-voting-0", env.Data.Items[0].ID)
}

func TestListIdeas_Filtered(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas?type=community&tags=zk&page=1")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[catalog.Page[service.IdeaView]](t, resp.Body.Bytes())
	require.Len(t, env.Data.Items, 2)
	assert.Equal(t, "Private Voting", env.Data.Items[0].Name)
	assert.Equal(t, "Sealed Bids", env.Data.Items[1].Name)
}

func TestListIdeas_PageClamped(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas?page=99")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[catalog.Page[service.IdeaView]](t, resp.Body.Bytes())
	assert.Equal(t, 2, env.Data.Page)
	assert.Len(t, env.Data.Items, 3)
}

func TestListIdeas_LimitOverride(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas?limit=2")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[catalog.Page[service.IdeaView]](t, resp.Body.Bytes())
	assert.Equal(t, 4, env.Data.TotalPages)
	require.Len(t, env.Data.Items, 2)
}

func TestListIdeas_UnknownType(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas?type=sponsor")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	env := decode[any](t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unknown idea type")
}

func TestGetIdea(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas/community-private-voting-0")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[service.IdeaView](t, resp.Body.Bytes())
	assert.Equal(t, "Private Voting", env.Data.Name)
	assert.Equal(t, "community", string(env.Data.Variant))
}

func TestGetIdea_LegacySlug(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	// Bare name slug and slug-0 both resolve.
	for _, path := range []string{"/api/v1/ideas/stealth-payments", "/api/v1/ideas/stealth-payments-0"} {
		resp := doGet(server, path)
		require.Equal(t, http.StatusOK, resp.Code, path)

		env := decode[service.IdeaView](t, resp.Body.Bytes())
		assert.Equal(t, "Stealth Payments", env.Data.Name)
	}
}

func TestGetIdea_NotFound(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas/no-such-idea")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRandomIdea(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	// Narrowed to a single idea, the pick is deterministic.
	resp := doGet(server, "/api/v1/ideas/random?tags=messaging")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[service.IdeaView](t, resp.Body.Bytes())
	assert.Equal(t, "Metadata Shield", env.Data.Name)
}

func TestRandomIdea_EmptyPool(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/ideas/random?tags=no-such-tag")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListTags(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/tags")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[[]string](t, resp.Body.Bytes())
	assert.Equal(t, []string{"governance", "messaging", "networking", "payments", "zk"}, env.Data)
}

func TestGetOrganization(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/orgs/nym")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[service.OrganizationPage](t, resp.Body.Bytes())
	assert.Equal(t, "Nym", env.Data.Organization.Name)
	require.Len(t, env.Data.Ideas, 1)
	assert.Equal(t, "Mixnet SDK", env.Data.Ideas[0].Name)
}

func TestGetOrganization_NotFound(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/orgs/no-such-org")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDataFile(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/data/ideas/"+catalog.CommunityFile)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header().Get("Cache-Control"))
	assert.Contains(t, resp.Body.String(), "Private Voting")
}

func TestDataFile_UnknownName(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/data/ideas/secrets.json")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
