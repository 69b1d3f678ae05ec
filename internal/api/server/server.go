package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/api/middleware"
	"github.com/iryswiki/iryswiki/internal/api/rest"
	"github.com/iryswiki/iryswiki/internal/forum"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	ExplorerURL  string
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	forum      forum.Forum
	limiter    ratelimit.Limiter
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server. limiter and gatherer may be nil.
func New(cfg Config, f forum.Forum, limiter ratelimit.Limiter, gatherer prometheus.Gatherer) *Server {
	return &Server{
		config:   cfg,
		forum:    f,
		limiter:  limiter,
		gatherer: gatherer,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	var mutationLimit gin.HandlerFunc
	if s.limiter != nil {
		mutationLimit = middleware.RateLimit(s.limiter)
	}

	restHandler := rest.NewHandler(s.forum, s.config.ExplorerURL)
	rest.SetupRoutes(router, restHandler, s.config.Auth, mutationLimit)

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
		zap.Bool("auth", s.config.Auth.Enabled()),
		zap.Bool("rate_limit", s.limiter != nil),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
