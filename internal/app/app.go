// Package app wires config, logging, server, handlers and router together
// and runs the HTTP server until its context is cancelled.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/deppfellow/itemdemo/internal/handler"
	"github.com/deppfellow/itemdemo/internal/logger"
	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/deppfellow/itemdemo/internal/router"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/deppfellow/itemdemo/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Build constructs the server container and its router without listening.
func Build(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) (*server.Server, *echo.Echo, error) {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create server: %w", err)
	}

	services, err := service.NewService(srv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create services: %w", err)
	}

	docs := openapi.NewRegistry()
	handlers := handler.NewHandlers(srv, services, docs)
	r := router.NewRouter(srv, handlers, docs)

	srv.SetupHTTPServer(r)

	return srv, r, nil
}

// Run loads the config for serviceName, starts the server and blocks until
// ctx is done or the server fails. A non-empty services list overrides the
// configured route groups.
func Run(ctx context.Context, serviceName string, services []string) error {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return err
	}

	if len(services) > 0 {
		cfg.Server.Services = services
	}

	loggerService := logger.NewLoggerService(&cfg.Observability)
	log := logger.NewLoggerWithService(&cfg.Observability, loggerService)

	srv, _, err := Build(cfg, &log, loggerService)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		loggerService.Shutdown()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil {
		return err
	}

	log.Info().Msg("server stopped")

	return nil
}
