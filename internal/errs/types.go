// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldErrors for request schemas or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Keep schema validation failures apart from business rule failures.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// Kind classifies an HTTPError. The kind decides which body shape the
// global error handler writes.
type Kind string

const (
	// KindSchemaValidation is raised by the binding/validation layer before
	// any handler logic runs (missing fields, wrong types, malformed JSON).
	KindSchemaValidation Kind = "schema_validation"

	// KindInvalidArgument is a business rule violation raised by a handler.
	KindInvalidArgument Kind = "invalid_argument"

	// KindInternalFault is an internal failure surfaced as a 500.
	KindInternalFault Kind = "internal_fault"

	// KindNotFound is used for unknown routes.
	KindNotFound Kind = "not_found"

	// KindTooManyRequests is used by the rate limiter.
	KindTooManyRequests Kind = "too_many_requests"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "item-id", "error": "is required" }
type FieldError struct {
	// Field is the wire name the error relates to (e.g. "price" or "item-id").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ErrorResponse is the documented `{"detail": "..."}` body returned for
// business rule and internal fault errors.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationResponse is the body written for schema validation failures.
// It carries per-field errors and never uses the ErrorResponse shape.
type ValidationResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// Fields:
//   - Kind: which class of failure this is (drives the response shape).
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, used as `detail` for ErrorResponse bodies.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (schema validation only).
type HTTPError struct {
	Kind    Kind         `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// Two HTTPErrors match when they share a Kind, so callers can write
// errors.Is(err, &errs.HTTPError{Kind: errs.KindInvalidArgument}).
// An empty target Kind matches any HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return t.Kind == "" || t.Kind == e.Kind
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Body returns the JSON payload for this error.
//
// Schema validation failures keep the field-error shape, everything
// else is rendered as an ErrorResponse.
func (e *HTTPError) Body() any {
	if e.Kind == KindSchemaValidation {
		fieldErrors := e.Errors
		if fieldErrors == nil {
			fieldErrors = []FieldError{}
		}

		return ValidationResponse{
			Code:    e.Code,
			Message: e.Message,
			Errors:  fieldErrors,
		}
	}

	return ErrorResponse{Detail: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
