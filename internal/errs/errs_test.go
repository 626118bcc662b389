package errs_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/itemdemo/internal/errs"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHTTPErrorBody(t *testing.T) {
	Convey("Given an invalid argument error", t, func() {
		err := errs.NewInvalidArgumentError("Price must be non-negative")

		Convey("Then it is a 400 rendered as an ErrorResponse", func() {
			So(err.Status, ShouldEqual, http.StatusBadRequest)
			So(err.Code, ShouldEqual, "BAD_REQUEST")
			So(err.Body(), ShouldResemble, errs.ErrorResponse{Detail: "Price must be non-negative"})
		})
	})

	Convey("Given an internal server error", t, func() {
		err := errs.NewInternalServerError()

		Convey("Then the detail is the generic status text", func() {
			So(err.Status, ShouldEqual, http.StatusInternalServerError)
			So(err.Body(), ShouldResemble, errs.ErrorResponse{Detail: "Internal Server Error"})
		})
	})

	Convey("Given a schema validation error", t, func() {
		fields := []errs.FieldError{{Field: "price", Error: "is required"}}
		err := errs.NewValidationError("Validation failed", fields)

		Convey("Then the body keeps the field errors", func() {
			So(err.Status, ShouldEqual, http.StatusBadRequest)
			So(err.Body(), ShouldResemble, errs.ValidationResponse{
				Code:    errs.ValidationFailedCode,
				Message: "Validation failed",
				Errors:  fields,
			})
		})
	})

	Convey("Given a schema validation error without field errors", t, func() {
		err := errs.NewValidationError("Malformed JSON body", nil)

		Convey("Then the body still carries an empty errors array", func() {
			raw, marshalErr := json.Marshal(err.Body())
			So(marshalErr, ShouldBeNil)
			So(string(raw), ShouldEqual, `{"code":"VALIDATION_FAILED","message":"Malformed JSON body","errors":[]}`)
		})
	})
}

func TestHTTPErrorIs(t *testing.T) {
	Convey("Given errors of different kinds", t, func() {
		invalid := error(errs.NewInvalidArgumentError("bad"))
		fault := error(errs.NewInternalServerError())

		Convey("Then errors.Is matches on kind", func() {
			So(errors.Is(invalid, &errs.HTTPError{Kind: errs.KindInvalidArgument}), ShouldBeTrue)
			So(errors.Is(fault, &errs.HTTPError{Kind: errs.KindInvalidArgument}), ShouldBeFalse)
			So(errors.Is(fault, &errs.HTTPError{}), ShouldBeTrue)
		})

		Convey("Then WithMessage copies without mutating", func() {
			base := errs.NewInvalidArgumentError("first")
			other := base.WithMessage("second")
			So(base.Message, ShouldEqual, "first")
			So(other.Message, ShouldEqual, "second")
			So(other.Kind, ShouldEqual, errs.KindInvalidArgument)
		})
	})
}

func TestFromStatus(t *testing.T) {
	Convey("Given plain status codes", t, func() {
		So(errs.FromStatus(http.StatusNotFound, "").Kind, ShouldEqual, errs.KindNotFound)
		So(errs.FromStatus(http.StatusNotFound, "").Message, ShouldEqual, "Not Found")
		So(errs.FromStatus(http.StatusBadGateway, "").Kind, ShouldEqual, errs.KindInternalFault)
		So(errs.FromStatus(http.StatusMethodNotAllowed, "nope").Code, ShouldEqual, "METHOD_NOT_ALLOWED")
	})

	Convey("Given a string with spaces", t, func() {
		So(errs.MakeUpperCaseWithUnderscores("Bad Request"), ShouldEqual, "BAD_REQUEST")
	})
}
