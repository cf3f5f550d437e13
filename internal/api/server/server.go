package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/api/middleware"
	"github.com/feral-file/carbon-engine/internal/api/rest"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/importer"
	"github.com/feral-file/carbon-engine/internal/ledger"
	"github.com/feral-file/carbon-engine/internal/logger"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// Deps are the services the API serves
type Deps struct {
	Resolver  factor.Resolver
	Emissions emissions.Service
	Ledger    ledger.Service
	Importer  importer.Importer
	// Registry collects the request metrics; Gatherer serves /metrics
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	deps       Deps
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, deps Deps) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
	}
}

// Router builds the gin engine with every middleware and route
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))
	router.Use(middleware.Metrics(s.deps.Registry))

	restHandler := rest.NewHandler(s.config.Debug, s.deps.Resolver, s.deps.Emissions, s.deps.Ledger, s.deps.Importer)
	rest.SetupRoutes(router, restHandler)

	if s.deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
