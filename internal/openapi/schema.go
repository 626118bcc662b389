package openapi

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/deppfellow/itemdemo/internal/validation"
)

// Schema is the subset of the OpenAPI 3.0 schema object the services need.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Title      string             `json:"title,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Nullable   bool               `json:"nullable,omitempty"`
	Default    json.RawMessage    `json:"default,omitempty"`
}

var (
	queryParamType = reflect.TypeOf(validation.QueryParam{})
	wrapperType    = reflect.TypeOf((*validation.Wrapper)(nil)).Elem()
)

// SchemaOf derives a schema from a payload value using its json tags.
//
// A field is required when its validate tag contains "required". Optional
// pointer fields without a default are nullable. A `default:"..."` tag
// holds a JSON literal and is copied verbatim. validation.Wrapper fields
// are documented as the type they wrap.
func SchemaOf(v any) *Schema {
	if v == nil {
		return nil
	}
	return schemaOfType(reflect.TypeOf(v))
}

func schemaOfType(t reflect.Type) *Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == queryParamType {
		return &Schema{Type: "string", Nullable: true}
	}

	if t.Implements(wrapperType) {
		return schemaOfType(reflect.Zero(t).Interface().(validation.Wrapper).WrappedType())
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number", Format: "double"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: schemaOfType(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object"}
	case reflect.Struct:
		return structSchema(t)
	default:
		return &Schema{}
	}
}

func structSchema(t reflect.Type) *Schema {
	s := &Schema{
		Type:       "object",
		Title:      t.Name(),
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		prop := schemaOfType(f.Type)
		def, hasDefault := f.Tag.Lookup("default")
		if hasDefault {
			prop.Default = json.RawMessage(def)
		}

		if isRequired(f) {
			s.Required = append(s.Required, name)
		} else if f.Type.Kind() == reflect.Ptr && !hasDefault {
			prop.Nullable = true
		}

		s.Properties[name] = prop
	}

	return s
}

func isRequired(f reflect.StructField) bool {
	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		if rule == "required" {
			return true
		}
	}
	return false
}
