package router

import (
	"net/http"

	"github.com/deppfellow/itemdemo/internal/errs"
	"github.com/deppfellow/itemdemo/internal/handler"
	"github.com/deppfellow/itemdemo/internal/model"
	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/labstack/echo/v4"
)

// registerItemRoutes registers the item creation route.
//
// 204 is declared for documentation only: no code path returns it, and
// the OpenAPI document marks it with x-documentation-only.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers, docs *openapi.Registry) {
	r.POST("/items/", handler.Handle(h.Items.Handler, h.Items.CreateItem, http.StatusCreated))

	docs.Add(openapi.Route{
		Method:      http.MethodPost,
		Path:        "/items/",
		OperationID: "create_item",
		Summary:     "Create Item",
		Tag:         "items",
		Body:        &model.CreateItemRequest{},
		Responses: []openapi.Response{
			{Status: http.StatusCreated, Description: "Item created successfully", Model: model.Item{}},
			{Status: http.StatusNoContent, Description: "No Content", DocumentationOnly: true},
			{Status: http.StatusBadRequest, Description: "Validation Error", Model: errs.ErrorResponse{}},
			{Status: http.StatusInternalServerError, Description: "Internal Server Error", Model: errs.ErrorResponse{}},
		},
	})
}
