// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and extracts
// validation errors into a format the client can understand
package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/itemdemo/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with binding tags (`json:"price"`, `query:"item-id"`)
// - Add validator tags (`validate:"required"`)
// - Implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// validate is shared by every payload. A *validator.Validate caches struct
// metadata and is safe for concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report wire names (json or query tag) instead of Go field names, so an
	// aliased query parameter fails as "item-id" and not "ItemID".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if p, ok := field.Interface().(QueryParam); ok {
			return p.Ptr()
		}
		return nil
	}, QueryParam{})

	return v
}

// Struct runs the tag based rules of s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) bind populates the request struct from the query string or the JSON body.
// 2) payload.Validate() applies validation rules.
// 3) Returns a schema validation *errs.HTTPError with field-level errors if either step fails.
//
// NOTE: payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(msg, fieldErrors)
	}

	return nil
}

// bindError converts a binder failure (malformed JSON, wrong field types,
// unsupported content type) into a schema validation error.
func bindError(err error) *errs.HTTPError {
	status := http.StatusBadRequest
	message := "Invalid request payload"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			message = msg
		}
	}

	var fieldErrors []errs.FieldError

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		message = "Validation failed"
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", describeKind(typeErr.Type)),
		})
	case errors.As(err, &syntaxErr),
		errors.Is(err, ErrTrailingData),
		errors.Is(err, io.ErrUnexpectedEOF):
		message = "Malformed JSON body"
	}

	httpErr := errs.NewValidationError(message, fieldErrors)
	httpErr.Status = status

	return httpErr
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
