package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/deppfellow/itemdemo/internal/errs"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer() *server.Server {
	log := zerolog.Nop()
	s, err := server.New(config.New(), &log, nil)
	So(err, ShouldBeNil)
	return s
}

func TestToHTTPError(t *testing.T) {
	Convey("Given errors of different origins", t, func() {
		Convey("An HTTPError is kept even when wrapped", func() {
			original := errs.NewInvalidArgumentError("Price must be non-negative")
			So(toHTTPError(errors.Wrap(original, "create item")), ShouldEqual, original)
		})

		Convey("An echo 404 becomes a not found error", func() {
			httpErr := toHTTPError(echo.ErrNotFound)
			So(httpErr.Kind, ShouldEqual, errs.KindNotFound)
			So(httpErr.Message, ShouldEqual, "Not Found")
		})

		Convey("An echo 415 keeps its status", func() {
			httpErr := toHTTPError(echo.ErrUnsupportedMediaType)
			So(httpErr.Status, ShouldEqual, http.StatusUnsupportedMediaType)
			So(httpErr.Kind, ShouldEqual, errs.KindInvalidArgument)
		})

		Convey("An echo 5xx hides its message", func() {
			httpErr := toHTTPError(echo.NewHTTPError(http.StatusBadGateway, "upstream exploded"))
			So(httpErr.Status, ShouldEqual, http.StatusInternalServerError)
			So(httpErr.Message, ShouldEqual, "Internal Server Error")
		})

		Convey("An unknown error is an internal fault", func() {
			httpErr := toHTTPError(errors.New("db password is hunter2"))
			So(httpErr.Kind, ShouldEqual, errs.KindInternalFault)
			So(httpErr.Message, ShouldNotContainSubstring, "hunter2")
		})
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	Convey("Given the global error handler", t, func() {
		global := NewGlobalMiddlewares(newTestServer())
		e := echo.New()

		Convey("When a business rule error is handled", func() {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/items/", nil), rec)
			global.GlobalErrorHandler(errs.NewInvalidArgumentError("Price must be non-negative"), c)

			Convey("Then only the detail is written", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"detail":"Price must be non-negative"}`)
			})
		})

		Convey("When a validation error is handled", func() {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/items/", nil), rec)
			global.GlobalErrorHandler(errs.NewValidationError("Validation failed", []errs.FieldError{
				{Field: "name", Error: "is required"},
			}), c)

			Convey("Then the field errors are written", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, `"code":"VALIDATION_FAILED"`)
				So(rec.Body.String(), ShouldContainSubstring, `{"field":"name","error":"is required"}`)
			})
		})

		Convey("When the request is a HEAD", func() {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodHead, "/nope", nil), rec)
			global.GlobalErrorHandler(echo.ErrNotFound, c)

			Convey("Then no body is written", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.Len(), ShouldEqual, 0)
			})
		})
	})
}
