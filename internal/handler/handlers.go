// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package, and calls
// the service layer. It acts as the interface between the HTTP request and
// the business logic.
package handler

import (
	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/deppfellow/itemdemo/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Items   *ItemHandler
	Aliases *AliasHandler
}

// NewHandlers constructs the handler container. docs is the registry the
// router fills while registering routes; OpenAPI serves it.
func NewHandlers(s *server.Server, services *service.Services, docs *openapi.Registry) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s, docs),
		Items:   NewItemHandler(s, services.Items),
		Aliases: NewAliasHandler(s),
	}
}
