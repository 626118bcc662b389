// Package middleware contains the Echo middlewares shared by both services:
// request ids, request-scoped logging, tracing, metrics, rate limiting and
// the global error handler.
package middleware
