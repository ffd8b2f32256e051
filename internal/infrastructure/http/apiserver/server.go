// Package apiserver provides the pure JSON API HTTP server for the
// recipe optimization engine.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brewsmith/v1/internal/infrastructure/config"
	"github.com/brewsmith/v1/internal/infrastructure/http/middleware"
	"github.com/brewsmith/v1/internal/ports/inbound"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is the optimizer API HTTP server.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	handlers *Handlers
	registry *prometheus.Registry
}

// NewServer creates the API server.
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	service inbound.OptimizerService,
	catalog outbound.StyleCatalog,
	registry *prometheus.Registry,
) *Server {
	s := &Server{
		config:   cfg,
		logger:   log,
		handlers: NewHandlers(service, catalog, log),
		registry: registry,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	if s.config.Monitoring.EnableMetrics && s.registry != nil {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compliance", s.handlers.AnalyzeCompliance)
		r.Post("/targets", s.handlers.GenerateTargets)
		r.Post("/plan", s.handlers.GeneratePlan)
		r.Post("/effects", s.handlers.PreviewEffects)

		r.Get("/styles", s.handlers.ListStyles)
		r.Get("/styles/{id}", s.handlers.GetStyle)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting optimizer API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *Server) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down optimizer API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
