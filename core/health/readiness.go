package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/logger"
	"github.com/dmitrymomot/sessionkit/core/response"
)

// Readiness verifies all service dependencies are functioning. Returns
// "READY" if every check passes, 503 Service Unavailable otherwise.
//
//	r.Get("/health/ready", health.Readiness[*router.Context](
//		log,
//		redis.Healthcheck(client),
//	))
func Readiness[C handler.Context](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
