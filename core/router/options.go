package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/core/handler"
)

// Option configures a Router at construction.
type Option[C handler.Context] func(*mux[C])

// WithContextFactory provides the constructor for custom context types.
// Required whenever C is not *Context.
func WithContextFactory[C handler.Context](factory func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = factory
	}
}

// WithErrorHandler replaces the default error handler (plain 500).
func WithErrorHandler[C handler.Context](eh handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if eh != nil {
			m.errorHandler = eh
		}
	}
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
