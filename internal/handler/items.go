package handler

import (
	"github.com/deppfellow/itemdemo/internal/model"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/deppfellow/itemdemo/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the item creation route.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// CreateItem echoes a validated item after the business rules passed.
func (h *ItemHandler) CreateItem(c echo.Context, req *model.CreateItemRequest) (model.Item, error) {
	return h.items.Create(c.Request().Context(), req.Item())
}
