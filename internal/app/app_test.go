package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestRouter(mutate func(cfg *config.Config)) *echo.Echo {
	cfg := config.New()
	cfg.Server.Services = []string{config.ServiceItems, config.ServiceAliases}
	cfg.Server.CORSAllowedOrigins = []string{"*"}
	cfg.Observability.ServiceName = "itemdemo-test"
	if mutate != nil {
		mutate(cfg)
	}

	log := zerolog.Nop()
	_, r, err := Build(cfg, &log, nil)
	So(err, ShouldBeNil)

	return r
}

func do(r *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestCreateItem(t *testing.T) {
	Convey("Given the item creation route", t, func() {
		r := newTestRouter(nil)

		Convey("When a valid item is posted", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":10.5,"tax":1.25}`)

			Convey("Then it is echoed with 201", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(decode(rec), ShouldResemble, map[string]interface{}{
					"name": "Foo", "description": "A foo", "price": 10.5, "tax": 1.25,
				})
			})
		})

		Convey("When tax is omitted and the price is zero", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":0}`)

			Convey("Then tax defaults to 0", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(decode(rec)["tax"], ShouldEqual, 0.0)
			})
		})

		Convey("When the price is negative", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":-1}`)

			Convey("Then a 400 ErrorResponse is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(rec), ShouldResemble, map[string]interface{}{"detail": "Price must be non-negative"})
			})
		})

		Convey("When the name is error", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"error","description":"boom","price":1}`)

			Convey("Then a 500 ErrorResponse is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(decode(rec), ShouldResemble, map[string]interface{}{"detail": "Internal Server Error"})
			})
		})

		Convey("When a required field is missing", func() {
			for _, body := range []string{
				`{"description":"A foo","price":1}`,
				`{"name":"Foo","price":1}`,
				`{"name":"Foo","description":"A foo"}`,
			} {
				rec := do(r, http.MethodPost, "/items/", body)

				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(rec)["code"], ShouldEqual, "VALIDATION_FAILED")
			}
		})

		Convey("When tax is sent as null", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":1,"tax":null}`)

			Convey("Then it is a schema validation error", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(rec)["errors"], ShouldResemble, []interface{}{
					map[string]interface{}{"field": "tax", "error": "must be of type number"},
				})
			})
		})

		Convey("When the JSON body is followed by more text", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":1} trailing`)

			Convey("Then the body is malformed and errors is an empty array", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual,
					`{"code":"VALIDATION_FAILED","message":"Malformed JSON body","errors":[]}`)
			})
		})

		Convey("When the body is sent without a content type", func() {
			req := httptest.NewRequest(http.MethodPost, "/items/", strings.NewReader(`{"name":"Foo","description":"A foo","price":1}`))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			Convey("Then it is read as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(decode(rec)["name"], ShouldEqual, "Foo")
			})
		})

		Convey("When the price has the wrong type", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":"ten"}`)

			Convey("Then the schema validation shape is used, not ErrorResponse", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				body := decode(rec)
				So(body, ShouldNotContainKey, "detail")
				So(body["errors"], ShouldResemble, []interface{}{
					map[string]interface{}{"field": "price", "error": "must be of type number"},
				})
			})
		})
	})
}

func TestQueryAliasing(t *testing.T) {
	Convey("Given the query aliasing routes", t, func() {
		r := newTestRouter(nil)

		Convey("When both hyphenated params are supplied", func() {
			rec := do(r, http.MethodGet, "/items/?item-id=a&user-id=b", "")

			Convey("Then they are echoed under the internal names", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"item_id":"a","user_id":"b"}`)
			})
		})

		Convey("When user-id is missing", func() {
			rec := do(r, http.MethodGet, "/items/?item-id=a", "")

			Convey("Then the validation error names the wire parameter", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decode(rec)["errors"], ShouldResemble, []interface{}{
					map[string]interface{}{"field": "user-id", "error": "is required"},
				})
			})
		})

		Convey("When the snake_case names are used on the wire", func() {
			rec := do(r, http.MethodGet, "/items/?item_id=a&user_id=b", "")

			Convey("Then they are not recognised", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the wire names are sent in another case", func() {
			items := do(r, http.MethodGet, "/items/?ITEM-ID=a&USER-ID=b", "")
			item := do(r, http.MethodGet, "/item/?Item-Query=x", "")

			Convey("Then they are not recognised", func() {
				So(items.Code, ShouldEqual, http.StatusBadRequest)
				So(item.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(item.Body.String()), ShouldEqual, `{"query":null}`)
			})
		})

		Convey("When item-query is repeated", func() {
			rec := do(r, http.MethodGet, "/item/?item-query=a&item-query=b", "")

			Convey("Then the last value is echoed", func() {
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"query":"b"}`)
			})
		})

		Convey("When item-query is absent", func() {
			rec := do(r, http.MethodGet, "/item/", "")

			Convey("Then query is null", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"query":null}`)
			})
		})

		Convey("When item-query is supplied", func() {
			rec := do(r, http.MethodGet, "/item/?item-query=hello", "")

			Convey("Then it is echoed under query", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"query":"hello"}`)
			})
		})
	})
}

func TestServiceSelection(t *testing.T) {
	Convey("Given only the aliasing service is enabled", t, func() {
		r := newTestRouter(func(cfg *config.Config) {
			cfg.Server.Services = []string{config.ServiceAliases}
		})

		Convey("Then POST /items/ is not routed", func() {
			rec := do(r, http.MethodPost, "/items/", `{"name":"Foo","description":"A foo","price":1}`)
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(decode(rec), ShouldResemble, map[string]interface{}{"detail": "Method Not Allowed"})
		})

		Convey("Then GET /items/ still works", func() {
			rec := do(r, http.MethodGet, "/items/?item-id=1&user-id=2", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestSystemRoutes(t *testing.T) {
	Convey("Given a router with every service", t, func() {
		r := newTestRouter(nil)

		Convey("When an unknown route is requested", func() {
			rec := do(r, http.MethodGet, "/nope", "")

			Convey("Then a 404 ErrorResponse is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(decode(rec), ShouldResemble, map[string]interface{}{"detail": "Not Found"})
			})
		})

		Convey("When a request id is supplied", func() {
			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			Convey("Then it is echoed back", func() {
				So(rec.Header().Get("X-Request-ID"), ShouldEqual, "req-123")
			})
		})

		Convey("When no request id is supplied", func() {
			rec := do(r, http.MethodGet, "/status", "")

			Convey("Then one is generated", func() {
				So(rec.Header().Get("X-Request-ID"), ShouldNotBeEmpty)
			})
		})

		Convey("When the health endpoint is requested", func() {
			rec := do(r, http.MethodGet, "/status", "")

			Convey("Then it reports healthy", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				body := decode(rec)
				So(body["status"], ShouldEqual, "healthy")
				So(body["service"], ShouldEqual, "itemdemo-test")
			})
		})

		Convey("When the OpenAPI document is requested", func() {
			rec := do(r, http.MethodGet, "/openapi.json", "")

			Convey("Then it lists every business route", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				paths := decode(rec)["paths"].(map[string]interface{})
				So(paths, ShouldContainKey, "/items/")
				So(paths, ShouldContainKey, "/item/")

				items := paths["/items/"].(map[string]interface{})
				So(items, ShouldContainKey, "post")
				So(items, ShouldContainKey, "get")

				responses := items["post"].(map[string]interface{})["responses"].(map[string]interface{})
				So(responses["204"].(map[string]interface{})["x-documentation-only"], ShouldEqual, true)
			})
		})

		Convey("When the docs UI is requested", func() {
			rec := do(r, http.MethodGet, "/docs", "")

			Convey("Then HTML is served without caching", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Cache-Control"), ShouldEqual, "no-cache")
				So(rec.Body.String(), ShouldContainSubstring, "/openapi.json")
			})
		})

		Convey("When metrics are scraped after a request", func() {
			do(r, http.MethodGet, "/item/", "")
			rec := do(r, http.MethodGet, "/metrics", "")

			Convey("Then the request is counted by route", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `route="/item/"`)
			})
		})
	})

	Convey("Given metrics are disabled", t, func() {
		r := newTestRouter(func(cfg *config.Config) {
			cfg.Observability.Metrics.Enabled = false
		})

		Convey("Then /metrics is not routed", func() {
			So(do(r, http.MethodGet, "/metrics", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRateLimit(t *testing.T) {
	Convey("Given a rate limit of one request per second", t, func() {
		r := newTestRouter(func(cfg *config.Config) {
			cfg.Server.RateLimit = 1
		})

		Convey("When two requests arrive back to back", func() {
			first := do(r, http.MethodGet, "/item/", "")
			second := do(r, http.MethodGet, "/item/", "")

			Convey("Then the second is rejected with 429", func() {
				So(first.Code, ShouldEqual, http.StatusOK)
				So(second.Code, ShouldEqual, http.StatusTooManyRequests)
				So(decode(second), ShouldResemble, map[string]interface{}{"detail": "Too Many Requests"})
			})
		})
	})
}

func TestRun(t *testing.T) {
	t.Setenv("ITEMDEMO_SERVER__HOST", "127.0.0.1")
	t.Setenv("ITEMDEMO_SERVER__PORT", "0")
	t.Setenv("ITEMDEMO_OBSERVABILITY__LOGGING__LEVEL", "error")

	Convey("Given a context cancelled shortly after start", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		Convey("Then Run shuts the server down and returns nil", func() {
			So(Run(ctx, "itemdemo-test", []string{config.ServiceItems}), ShouldBeNil)
		})
	})

	Convey("Given an invalid config", t, func() {
		t.Setenv("ITEMDEMO_OBSERVABILITY__LOGGING__FORMAT", "xml")

		Convey("Then Run fails before listening", func() {
			err := Run(context.Background(), "itemdemo-test", nil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
