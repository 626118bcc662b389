// Package service contains the business logic.
//
// It sits behind the handler layer and receives payloads that already
// passed schema validation.
package service

import (
	"github.com/deppfellow/itemdemo/internal/server"
)

type Services struct {
	Items *ItemService
}

func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Items: NewItemService(s),
	}, nil
}
