// Package api provides the HTTP API server and handlers for the ideas service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/web3privacy/ideas-server/internal/catalog"
	"github.com/web3privacy/ideas-server/internal/config"
	"github.com/web3privacy/ideas-server/internal/http/response"
	"github.com/web3privacy/ideas-server/internal/ratelimit"
	"github.com/web3privacy/ideas-server/internal/service"
	"github.com/web3privacy/ideas-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	ideaService     *service.IdeaService
	orgService      *service.OrganizationService
	generateService *service.GenerateService
	searchService   *service.SearchService
	store           *catalog.Store
	validator       *validation.Validator
	generateLimiter *ratelimit.KeyedRateLimiter
	router          *chi.Mux
	logger          *slog.Logger
	allowedOrigins  []string
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg *config.Config,
	ideaService *service.IdeaService,
	orgService *service.OrganizationService,
	generateService *service.GenerateService,
	searchService *service.SearchService,
	store *catalog.Store,
	validator *validation.Validator,
	logger *slog.Logger,
) *Server {
	s := &Server{
		ideaService:     ideaService,
		orgService:      orgService,
		generateService: generateService,
		searchService:   searchService,
		store:           store,
		validator:       validator,
		generateLimiter: ratelimit.PerMinute(cfg.Chat.RequestsPerMinute, cfg.Chat.Burst),
		router:          chi.NewRouter(),
		logger:          logger,
		allowedOrigins:  cfg.Server.AllowedOrigins,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-owned resources.
func (s *Server) Close() {
	s.generateLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Raw collection files, same paths the static site served them from.
	s.router.Get("/data/ideas/{file}", s.handleDataFile)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", s.handleListIdeas)
			r.Get("/random", s.handleRandomIdea)
			r.Get("/{id}", s.handleGetIdea)
		})

		r.Get("/tags", s.handleListTags)
		r.Get("/orgs/{slug}", s.handleGetOrganization)
		r.Get("/search", s.handleSearch)

		// Generate spends upstream model tokens, so it is limited per IP.
		r.With(RateLimitMiddleware(s.generateLimiter, s.logger)).
			Post("/generate", s.handleGenerate)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
