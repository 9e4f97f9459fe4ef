package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3privacy/ideas-server/internal/service"
)

func TestSearch_Basic(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/search?q=voting")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[service.SearchResult](t, resp.Body.Bytes())
	assert.True(t, env.Success)
	require.NotEmpty(t, env.Data.Hits)
	assert.Equal(t, "Private Voting", env.Data.Hits[0].Name)
	assert.Equal(t, "community", string(env.Data.Hits[0].Variant))
}

func TestSearch_VariantFilter(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/search?q=payments&variant=expert")
	require.Equal(t, http.StatusOK, resp.Code)

	env := decode[service.SearchResult](t, resp.Body.Bytes())
	require.Len(t, env.Data.Hits, 1)
	assert.Equal(t, "Stealth Payments", env.Data.Hits[0].Name)
}

func TestSearch_MissingQuery(t *testing.T) {
	server := setupTestServer(t, testServerOptions{})

	resp := doGet(server, "/api/v1/search")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	env := decode[any](t, resp.Body.Bytes())
	assert.Equal(t, "missing query", env.Error)
}
