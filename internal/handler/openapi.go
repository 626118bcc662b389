package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
)

// APIVersion is published in the OpenAPI document.
const APIVersion = "0.1.0"

//go:embed static/openapi.html
var openAPIUI string

// OpenAPIHandler serves the generated OpenAPI document and a small docs UI
// that renders it.
type OpenAPIHandler struct {
	Handler
	docs *openapi.Registry
}

func NewOpenAPIHandler(s *server.Server, docs *openapi.Registry) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		docs:    docs,
	}
}

// ServeSpec writes the OpenAPI document of the registered business routes.
func (h *OpenAPIHandler) ServeSpec(c echo.Context) error {
	return c.JSON(http.StatusOK, h.docs.Build(h.server.Config.Observability.ServiceName, APIVersion))
}

// ServeOpenAPIUI serves the docs UI page. Caching is disabled so a restarted
// service never shows stale docs.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, openAPIUI)
}
