package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/core/handler"
)

type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip disables the middleware for matching requests.
	Skip func(ctx handler.Context) bool
	// Generator creates new request IDs (default: UUID v4).
	Generator func() string
	// HeaderName carries the request ID (default: "X-Request-ID").
	HeaderName string
	// UseExisting trusts an inbound request ID header instead of always
	// generating one. Enable only behind a proxy that sets it.
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// Each request gets a fresh UUID, exposed in the context and on the
// response headers.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var requestID string
			if cfg.UseExisting {
				requestID = ctx.Request().Header.Get(cfg.HeaderName)
			}
			if requestID == "" {
				requestID = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, requestID)

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, requestID)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID retrieves the request ID from the request context.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
