// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and the route groups enabled in the config,
// mapping paths to their handlers and recording each business route in
// the OpenAPI registry.
package router

import (
	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/deppfellow/itemdemo/internal/handler"
	"github.com/deppfellow/itemdemo/internal/middleware"
	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/deppfellow/itemdemo/internal/validation"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance for s. docs must be the registry the
// handlers were built with, so /openapi.json reflects these routes.
func NewRouter(s *server.Server, h *handler.Handlers, docs *openapi.Registry) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = validation.JSONSerializer{}

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Observe(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)

	if s.Config.Server.HasService(config.ServiceItems) {
		registerItemRoutes(router, h, docs)
	}

	if s.Config.Server.HasService(config.ServiceAliases) {
		registerAliasRoutes(router, h, docs)
	}

	return router
}
