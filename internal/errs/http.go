package errs

import (
	"net/http"
)

// ValidationFailedCode is the machine code used for schema validation failures.
const ValidationFailedCode = "VALIDATION_FAILED"

// NewValidationError creates a 400 schema validation HTTPError.
//
// This is the error returned by the binding layer, before any handler runs.
// fieldErrors may be nil when the payload could not be decoded at all.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Kind:    KindSchemaValidation,
		Code:    ValidationFailedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewInvalidArgumentError creates a 400 Bad Request HTTPError for a
// business rule violation. The message is sent to the client as `detail`.
func NewInvalidArgumentError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindInvalidArgument,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Kind:    KindInternalFault,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Kind:    KindNotFound,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Kind:    KindTooManyRequests,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: http.StatusText(http.StatusTooManyRequests),
		Status:  http.StatusTooManyRequests,
	}
}

// FromStatus builds an HTTPError for a plain status code, e.g. one coming
// from an echo.HTTPError. 5xx statuses become internal faults.
func FromStatus(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}

	kind := KindInvalidArgument
	switch {
	case status >= http.StatusInternalServerError:
		kind = KindInternalFault
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusTooManyRequests:
		kind = KindTooManyRequests
	}

	return &HTTPError{
		Kind:    kind,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}
