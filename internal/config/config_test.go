package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deppfellow/itemdemo/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it listens on every interface, port 8000", func() {
			convey.So(cfg.Server.Addr(), convey.ShouldEqual, "0.0.0.0:8000")
			convey.So(cfg.Primary.Env, convey.ShouldEqual, "development")
			convey.So(cfg.Observability.Logging.Level, convey.ShouldEqual, "info")
			convey.So(cfg.Observability.NewRelicEnabled(), convey.ShouldBeFalse)
		})
	})
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		convey.Reset(clearConfigEnvVars)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load("itemsvc")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, "8000")
				convey.So(cfg.Server.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
				convey.So(cfg.Server.Services, convey.ShouldResemble, []string{config.ServiceItems, config.ServiceAliases})
				convey.So(cfg.Observability.ServiceName, convey.ShouldEqual, "itemsvc")
				convey.So(cfg.Observability.Environment, convey.ShouldEqual, "development")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("ITEMDEMO_PRIMARY__ENV", "production")
			_ = os.Setenv("ITEMDEMO_SERVER__PORT", "9000")
			_ = os.Setenv("ITEMDEMO_SERVER__RATE_LIMIT", "2.5")
			_ = os.Setenv("ITEMDEMO_SERVER__SERVICES", "aliases")
			_ = os.Setenv("ITEMDEMO_OBSERVABILITY__LOGGING__LEVEL", "warn")

			cfg, err := config.Load("aliassvc")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, "9000")
				convey.So(cfg.Server.Host, convey.ShouldEqual, "0.0.0.0")
				convey.So(cfg.Server.RateLimit, convey.ShouldEqual, 2.5)
				convey.So(cfg.Server.Services, convey.ShouldResemble, []string{config.ServiceAliases})
				convey.So(cfg.Server.HasService(config.ServiceItems), convey.ShouldBeFalse)
				convey.So(cfg.Observability.Logging.Level, convey.ShouldEqual, "warn")
				convey.So(cfg.Observability.Logging.Format, convey.ShouldEqual, "console")
				convey.So(cfg.Observability.IsProduction(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			yamlContent := `
server:
  port: "8081"
  idle_timeout: 5
observability:
  logging:
    format: json
`
			convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)
			_ = os.Setenv(config.FileEnvVar, path)

			cfg, err := config.Load("itemsvc")

			convey.Convey("Then file values are layered over the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Server.Port, convey.ShouldEqual, "8081")
				convey.So(cfg.Server.IdleTimeout, convey.ShouldEqual, 5)
				convey.So(cfg.Server.ReadTimeout, convey.ShouldEqual, 30)
				convey.So(cfg.Observability.Logging.Format, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv(config.FileEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load("itemsvc")

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value is invalid", func() {
			_ = os.Setenv("ITEMDEMO_OBSERVABILITY__LOGGING__LEVEL", "loud")

			_, err := config.Load("itemsvc")

			convey.Convey("Then an invalid config error is returned", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When an unknown service is requested", func() {
			_ = os.Setenv("ITEMDEMO_SERVER__SERVICES", "items,orders")

			_, err := config.Load("server")

			convey.Convey("Then validation rejects it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix) {
			_ = os.Unsetenv(key)
		}
	}
}
