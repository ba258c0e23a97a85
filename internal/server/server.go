package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/auth"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/config"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/identity"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/layout"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server/middleware"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/tile"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/youthemail"
)

// Server is the HTTP server that wires all application routes and middleware.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	cfg        *config.Config
}

// Services bundles the application services the route handlers depend on.
type Services struct {
	Resolver    *identity.Resolver
	Tiles       *tile.Registry
	Layouts     *layout.Manager
	YouthEmails *youthemail.Registry
	Media       *media.Client
}

// New creates a Server with all routes wired. ctx bounds background work
// such as rate-limiter cleanup. webAssets may be nil; when provided, the
// React admin SPA is served on all unmatched routes (embedded via go:embed
// for single-binary distribution).
func New(ctx context.Context, cfg *config.Config, verifier auth.TokenVerifier, svcs Services, webAssets fs.FS) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	s := &Server{
		router: router,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// Mount API routes on /api with three sub-groups:
	// 1. Public group for the pre-login access check.
	// 2. Authenticated group for mixed-role resources.
	// 3. Admin group for whitelist and media management.
	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitByIP(ctx, 5, 10))

			publicConfig := huma.DefaultConfig("Youth Portal Access API", "1.0.0")
			publicConfig.Servers = []*huma.Server{
				{URL: "/api"},
			}
			publicAPI := humachi.New(r, publicConfig)
			registerPublicRoutes(publicAPI, svcs)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier, svcs.Resolver))

			apiConfig := huma.DefaultConfig("Youth Portal API", "1.0.0")
			apiConfig.Servers = []*huma.Server{
				{URL: "/api"},
			}
			api := humachi.New(r, apiConfig)
			registerAuthenticatedRoutes(api, svcs)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier, svcs.Resolver))
			r.Use(middleware.RequireAdmin())

			adminConfig := huma.DefaultConfig("Youth Portal Admin API", "1.0.0")
			adminConfig.Servers = []*huma.Server{
				{URL: "/api"},
			}
			adminAPI := humachi.New(r, adminConfig)
			registerAdminRoutes(adminAPI, svcs)
		})
	})

	// Health check (unauthenticated).
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Serve the embedded admin SPA on all unmatched routes.
	// This must be the last route registered so API routes take priority.
	if webAssets != nil {
		router.NotFound(spaFileServer(webAssets).ServeHTTP)
		log.Info().Msg("embedded admin dashboard enabled")
	}

	return s
}

// Start begins listening for HTTP requests.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
