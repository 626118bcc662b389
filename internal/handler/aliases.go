package handler

import (
	"github.com/deppfellow/itemdemo/internal/model"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
)

// AliasHandler serves the query aliasing routes. Both are pure echoes of
// the bound query values.
type AliasHandler struct {
	Handler
}

func NewAliasHandler(s *server.Server) *AliasHandler {
	return &AliasHandler{
		Handler: NewHandler(s),
	}
}

// ListItems answers GET /items/?item-id=..&user-id=..
func (h *AliasHandler) ListItems(_ echo.Context, q *model.ItemsQuery) (model.ItemsQueryResponse, error) {
	return model.ItemsQueryResponse{
		ItemID: q.ItemID.Value,
		UserID: q.UserID.Value,
	}, nil
}

// GetItem answers GET /item/?item-query=..
func (h *AliasHandler) GetItem(_ echo.Context, q *model.ItemQuery) (model.ItemQueryResponse, error) {
	return model.ItemQueryResponse{Query: q.Q.Ptr()}, nil
}
