package validation

import (
	"encoding/json"
)

// QueryParam is a query string value that remembers whether the caller
// supplied it at all. An empty value (`?item-id=`) is present; a missing
// parameter is not.
//
// BindAndValidate fills it only when the exact `query` tag key exists on
// the wire. The validator sees it as a *string, which makes
// `validate:"required"` mean "present".
type QueryParam struct {
	Value string
	Set   bool
}

// UnmarshalParam records a present parameter. It satisfies
// echo.BindUnmarshaler.
func (p *QueryParam) UnmarshalParam(src string) error {
	p.Value = src
	p.Set = true
	return nil
}

// Ptr returns the value or nil when the parameter was absent.
func (p QueryParam) Ptr() *string {
	if !p.Set {
		return nil
	}
	v := p.Value
	return &v
}

// MarshalJSON renders an absent parameter as null.
func (p QueryParam) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Ptr())
}
