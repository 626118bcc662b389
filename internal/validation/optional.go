package validation

import (
	"encoding/json"
	"reflect"
)

// Wrapper is implemented by field types that carry a single value on the
// wire. Schema generation documents the wrapped type.
type Wrapper interface {
	WrappedType() reflect.Type
}

// Optional is a JSON body field that tells an omitted key from an explicit
// null. Set is true whenever the key was sent; Null is true when its value
// was null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Or returns the value, or def when the key was omitted or null.
func (o Optional[T]) Or(def T) T {
	if !o.Set || o.Null {
		return def
	}
	return o.Value
}

func (Optional[T]) WrappedType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
