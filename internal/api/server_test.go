package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/chat"
	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/search"
	"github.com/web3privacy/ideas-server/internal/service"
	"github.com/web3privacy/ideas-server/internal/validation"
)

// envelope mirrors the response wrapper with a typed data slot.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func decode[T any](t *testing.T, body []byte) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type testServerOptions struct {
	chatHandler http.HandlerFunc
	noAPIKey    bool
	rpm         int
	burst       int
}

// setupTestServer creates a test server over a temp data directory and a
// stubbed chat backend.
func setupTestServer(t *testing.T, opts testServerOptions) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dataDir := t.TempDir()
	writeFile := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o600))
	}
	writeFile(catalog.CommunityFile, `[
		{"name":"Private Voting","description":"Anonymous governance votes","categories":["zk","governance"]},
		{"name":"Metadata Shield","description":"Hide who talks to whom","categories":["messaging"],"featured":true},
		{"name":"Burner Wallets","categories":["payments"]},
		{"name":"Tor Relay Rewards","categories":["networking"]},
		{"name":"Sealed Bids","categories":["zk"]}
	]`)
	writeFile(catalog.ExpertFile, `[
		{"name":"Stealth Payments","categories":["payments"],"author":"https://twitter.com/alice"}
	]`)
	writeFile(catalog.OrganizationFile, `[
		{"name":"Mixnet SDK","description":"Route traffic through a mixnet","categories":["networking"],"organizationName":"Nym","organizationLogo":"https://nym.com/logo.svg"}
	]`)

	store := catalog.NewStore(dataDir, logger)

	index, err := search.NewIndex(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	searchService := service.NewSearchService(index, store, logger)
	store.LoadAll()

	if opts.chatHandler == nil {
		opts.chatHandler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"name\":\"Generated Idea\",\"categories\":[\"zk\"]}"}}]}`))
		}
	}
	chatBackend := httptest.NewServer(opts.chatHandler)
	t.Cleanup(chatBackend.Close)

	apiKey := "test-key"
	if opts.noAPIKey {
		apiKey = ""
	}
	if opts.rpm == 0 {
		opts.rpm = 600
	}
	if opts.burst == 0 {
		opts.burst = 100
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins: []string{"*"},
		},
		Chat: config.ChatConfig{
			URL:               chatBackend.URL,
			Model:             "test-model",
			APIKey:            apiKey,
			RequestsPerMinute: opts.rpm,
			Burst:             opts.burst,
		},
	}

	chatClient := chat.NewClient(cfg.Chat, logger)

	server := NewServer(
		cfg,
		service.NewIdeaService(store, 4, logger),
		service.NewOrganizationService(store, logger),
		service.NewGenerateService(chatClient, store, logger),
		searchService,
		store,
		validation.New(),
		logger,
	)
	t.Cleanup(server.Close)

	return server
}

func doGet(server *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}
