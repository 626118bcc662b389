package service

import (
	"context"

	"github.com/deppfellow/itemdemo/internal/errs"
	"github.com/deppfellow/itemdemo/internal/middleware"
	"github.com/deppfellow/itemdemo/internal/model"
	"github.com/deppfellow/itemdemo/internal/server"
)

const (
	// FaultItemName triggers the simulated internal fault.
	FaultItemName = "error"

	negativePriceMessage = "Price must be non-negative"
)

// ItemService applies the item business rules. It stores nothing: a valid
// item is returned unchanged.
type ItemService struct {
	server *server.Server
}

func NewItemService(s *server.Server) *ItemService {
	return &ItemService{server: s}
}

// Create checks the business rules in order:
//  1. a negative price is an invalid argument (400)
//  2. the name "error" simulates an internal fault (500)
func (s *ItemService) Create(ctx context.Context, item model.Item) (model.Item, error) {
	logger := middleware.LoggerFromContext(ctx).With().
		Str("item_name", item.Name).
		Logger()

	if item.Price < 0 {
		logger.Debug().Float64("price", item.Price).Msg("item rejected")
		return model.Item{}, errs.NewInvalidArgumentError(negativePriceMessage)
	}

	if item.Name == FaultItemName {
		logger.Error().Msg("simulated item fault")
		return model.Item{}, errs.NewInternalServerError()
	}

	logger.Debug().Msg("item accepted")

	return item, nil
}
