package router

import (
	"net/http"

	"github.com/deppfellow/itemdemo/internal/errs"
	"github.com/deppfellow/itemdemo/internal/handler"
	"github.com/deppfellow/itemdemo/internal/model"
	"github.com/deppfellow/itemdemo/internal/openapi"
	"github.com/labstack/echo/v4"
)

// registerAliasRoutes registers the query aliasing routes.
//
// item-query also declares the serialization alias query_string. The
// response is a literal {"query": ...} object, so the alias is recorded in
// the docs as unused and never applied.
func registerAliasRoutes(r *echo.Echo, h *handler.Handlers, docs *openapi.Registry) {
	r.GET("/items/", handler.Handle(h.Aliases.Handler, h.Aliases.ListItems, http.StatusOK))
	r.GET("/item/", handler.Handle(h.Aliases.Handler, h.Aliases.GetItem, http.StatusOK))

	docs.Add(openapi.Route{
		Method:      http.MethodGet,
		Path:        "/items/",
		OperationID: "read_items",
		Summary:     "Read Items",
		Tag:         "aliases",
		Query:       &model.ItemsQuery{},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Model: model.ItemsQueryResponse{}},
			{Status: http.StatusBadRequest, Description: "Validation Error", Model: errs.ValidationResponse{}},
		},
	})

	docs.Add(openapi.Route{
		Method:      http.MethodGet,
		Path:        "/item/",
		OperationID: "read_item",
		Summary:     "Read Item",
		Tag:         "aliases",
		Query:       &model.ItemQuery{},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Model: model.ItemQueryResponse{}},
		},
		SerializationAliases: map[string]string{"item-query": "query_string"},
	})
}
