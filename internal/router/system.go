package router

import (
	"github.com/deppfellow/itemdemo/internal/handler"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business surface: health, docs and metrics.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/openapi.json", h.OpenAPI.ServeSpec)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if s.Metrics != nil {
		r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
	}
}
