// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - Prometheus metrics
//   - http.Server
//
// The request handlers are stateless, so nothing here is mutated after
// construction apart from the http.Server set up by SetupHTTPServer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/deppfellow/itemdemo/internal/metrics"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/itemdemo/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger(s)
//   - the metrics manager (nil when metrics are disabled)
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	Metrics *metrics.Manager

	// StartedAt is reported by the health endpoint.
	StartedAt time.Time

	httpServer *http.Server
}

// New constructs a Server. It does not start listening: that is done by
// SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	var metricsManager *metrics.Manager
	if cfg.Observability.Metrics.Enabled {
		metricsManager = metrics.NewManager(metrics.WithNamespace(cfg.Observability.Metrics.Namespace))
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       metricsManager,
		StartedAt:     time.Now().UTC(),
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    s.Config.Server.Addr(),
		Handler: handler,

		// Config stores int values, interpreted here as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// It requires SetupHTTPServer to be called first. http.ErrServerClosed,
// returned after a graceful Shutdown, is not reported as an error.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("addr", s.httpServer.Addr).
		Str("env", s.Config.Primary.Env).
		Strs("services", s.Config.Server.Services).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires and flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.LoggerService.Shutdown()

	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
