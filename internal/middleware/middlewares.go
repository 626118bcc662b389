package middleware

import (
	"github.com/deppfellow/itemdemo/internal/server"
)

// Middlewares groups every middleware so the router receives one value.
type Middlewares struct {
	Global *GlobalMiddlewares

	ContextEnhancer *ContextEnhancer

	Tracing *TracingMiddleware

	RateLimit *RateLimitMiddleware

	Metrics *MetricsMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
		Metrics:         NewMetricsMiddleware(s),
	}
}
