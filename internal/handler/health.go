package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/itemdemo/internal/middleware"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that load balancers and uptime
// monitors use to verify the service is alive.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports status, environment, enabled route groups and uptime.
// The services have no dependencies to probe, so the result is always 200
// while the process is serving.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	newRelic := "disabled"
	if h.server.LoggerService.GetApplication() != nil {
		newRelic = "enabled"
	}

	metrics := "disabled"
	if h.server.Metrics != nil {
		metrics = "enabled"
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"service":     h.server.Config.Observability.ServiceName,
		"services":    h.server.Config.Server.Services,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks": map[string]interface{}{
			"new_relic": map[string]string{"status": newRelic},
			"metrics":   map[string]string{"status": metrics},
		},
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
