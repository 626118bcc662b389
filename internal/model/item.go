// Package model holds the request and response payloads exchanged by the
// HTTP handlers. Every value is built per request and discarded afterwards.
package model

import "github.com/deppfellow/itemdemo/internal/validation"

// Item is the validated item echoed back by POST /items/.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Tax         float64 `json:"tax"`
}

// CreateItemRequest is the schema of the POST /items/ body.
//
// Pointers let the validator tell a missing field from a zero value:
// `"price": 0` and `"name": ""` are both present. Tax may be omitted but
// not sent as null.
type CreateItemRequest struct {
	Name        *string                      `json:"name" validate:"required"`
	Description *string                      `json:"description" validate:"required"`
	Price       *float64                     `json:"price" validate:"required"`
	Tax         validation.Optional[float64] `json:"tax" default:"0.0"`
}

func (r *CreateItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.Tax.Null {
		return validation.CustomValidationErrors{
			{Field: "tax", Message: "must be of type number"},
		}
	}

	return nil
}

// Item converts a validated request into an Item, defaulting tax to 0.
// It must only be called after Validate succeeded.
func (r *CreateItemRequest) Item() Item {
	return Item{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       *r.Price,
		Tax:         r.Tax.Or(0),
	}
}
