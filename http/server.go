package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kalyug-papa-bolo/vahan"
	"go.uber.org/zap"
)

// Server is the JSON API for RC lookups.
type Server struct {
	gate    *vahan.Gate
	fetcher vahan.Fetcher
	parser  vahan.Parser
	cache   *vahan.Cache
	logger  *zap.Logger
	brand   string
	addr    string
	server  *http.Server
}

// NewServer creates a server with the given dependencies. The cache
// may be nil to disable detail-page caching.
func NewServer(
	cfg vahan.Config,
	gate *vahan.Gate,
	fetcher vahan.Fetcher,
	parser vahan.Parser,
	cache *vahan.Cache,
	logger *zap.Logger,
) *Server {
	return &Server{
		gate:    gate,
		fetcher: fetcher,
		parser:  parser,
		cache:   cache,
		logger:  logger,
		brand:   cfg.Brand,
		addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
	}
}

// Handler builds the route tree. Exposed for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleLanding)
	r.Get("/health", s.handleHealth)
	r.Get("/api/vehicle-info", s.handleVehicleInfo)
	r.Get("/api/info", s.handleInfo)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	s.logger.Info("starting server", zap.String("addr", s.addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
