package validation

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrTrailingData is returned when a JSON body holds more than one value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

var queryParamType = reflect.TypeOf(QueryParam{})

// JSONSerializer is Echo's default serializer with a stricter Deserialize:
// the body must hold exactly one JSON value. An empty body decodes to
// nothing, so the required rules report the missing fields.
type JSONSerializer struct {
	echo.DefaultJSONSerializer
}

func (s JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)

	if err := dec.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}

// bind fills payload from the query string when it declares QueryParam
// fields, and from the JSON body otherwise.
func bind(c echo.Context, payload interface{}) error {
	if bindQuery(c.QueryParams(), payload) {
		return nil
	}
	return bindBody(c, payload)
}

// bindQuery sets every `query` tagged QueryParam field of payload. Keys are
// matched exactly and a repeated key keeps its last value. It reports
// whether payload is a query payload at all.
func bindQuery(params url.Values, payload interface{}) bool {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return false
	}
	v = v.Elem()
	t := v.Type()

	found := false
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("query")
		if f.Type != queryParamType || name == "" {
			continue
		}
		found = true

		values, ok := params[name]
		if !ok || len(values) == 0 {
			continue
		}

		p := v.Field(i).Addr().Interface().(*QueryParam)
		_ = p.UnmarshalParam(values[len(values)-1])
	}

	return found
}

// bindBody decodes a JSON body. A missing Content-Type is read as JSON;
// any other media type is rejected with 415.
func bindBody(c echo.Context, payload interface{}) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return echo.ErrUnsupportedMediaType
	}

	return c.Echo().JSONSerializer.Deserialize(c, payload)
}
