package model

import "github.com/deppfellow/itemdemo/internal/validation"

// ItemsQuery binds GET /items/. The wire names are hyphenated while the
// response uses the internal snake_case names.
type ItemsQuery struct {
	ItemID validation.QueryParam `query:"item-id" validate:"required"`
	UserID validation.QueryParam `query:"user-id" validate:"required"`
}

func (q *ItemsQuery) Validate() error {
	return validation.Struct(q)
}

// ItemsQueryResponse echoes the raw values of ItemsQuery.
type ItemsQueryResponse struct {
	ItemID string `json:"item_id"`
	UserID string `json:"user_id"`
}

// ItemQuery binds GET /item/. item-query is optional.
type ItemQuery struct {
	Q validation.QueryParam `query:"item-query"`
}

func (q *ItemQuery) Validate() error {
	return validation.Struct(q)
}

// ItemQueryResponse echoes ItemQuery. Query is null when item-query was
// not supplied.
type ItemQueryResponse struct {
	Query *string `json:"query"`
}
