package middleware

import (
	"time"

	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe records request count and latency per route template.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	manager := m.server.Metrics
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if manager == nil {
			return next
		}
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}

			manager.ObserveRequest(c.Request().Method, route, statusFromError(c, err), time.Since(start))

			return err
		}
	}
}
