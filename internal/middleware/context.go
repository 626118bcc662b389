package middleware

import (
	"context"

	"github.com/deppfellow/itemdemo/internal/logger"
	"github.com/deppfellow/itemdemo/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

type ctxKey string

const (
	// LoggerKey is used as the key for storing the request-scoped logger.
	LoggerKey = "logger"

	loggerCtxKey ctxKey = LoggerKey
)

// ContextEnhancer builds a request-scoped logger with request_id, method,
// route, client ip and (when New Relic is on) trace.id/span.id, and stores
// it in both the Echo context and the request's context.Context.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, not the raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), &contextLogger)))

			return next(c)
		}
	}
}

// GetLogger returns the request-scoped logger, or a no-op logger when the
// ContextEnhancer did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// LoggerFromContext is GetLogger for code that only has a context.Context.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
