package middleware

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/response"
	"github.com/dmitrymomot/sessionkit/core/session"
)

type sessionKey struct{}

// Transport moves the session mapping between the HTTP exchange and a
// backend. Load recovers the mapping from the request; Store writes the
// (possibly mutated) mapping to the response.
type Transport interface {
	Load(handler.Context) (session.Data, error)
	Store(handler.Context, session.Data) error
}

// SessionConfig configures the session middleware.
type SessionConfig[C handler.Context] struct {
	// Transport loads and stores the session mapping (required).
	Transport Transport
	// Skip disables session handling for matching requests, such as
	// health checks and static assets.
	Skip func(ctx C) bool
	// Logger for structured logging (default: slog with io.Discard).
	Logger *slog.Logger
	// ErrorHandler builds the response for tampered sessions and store
	// failures. Default: response.Error(response.ErrBadRequest) for
	// tampering, response.Error(err) otherwise.
	ErrorHandler func(ctx C, err error) handler.Response
}

// Session creates middleware that loads the session mapping before the
// handler runs and stores it afterwards.
//
// Load failures are graded. A request with no session, a stale one, or
// an undecodable one proceeds with an empty mapping. A request whose
// session fails authentication is rejected through the ErrorHandler,
// because a bad authentication tag means the cookie was modified, not
// merely aged out.
//
// Handlers read and mutate the mapping via GetSession and SetSession:
//
//	r.Use(middleware.Session[*router.Context](transport))
//
//	func handleDashboard(ctx *router.Context) handler.Response {
//		data := middleware.GetSession(ctx)
//		data["visits"] = visits(data) + 1
//		middleware.SetSession(ctx, data)
//		return response.JSON(data)
//	}
func Session[C handler.Context](transport Transport) handler.Middleware[C] {
	return SessionWithConfig(SessionConfig[C]{Transport: transport})
}

// SessionWithConfig creates the session middleware with custom
// configuration. See Session for the load and store semantics.
func SessionWithConfig[C handler.Context](cfg SessionConfig[C]) handler.Middleware[C] {
	if cfg.Transport == nil {
		panic("session middleware: transport is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx C, err error) handler.Response {
			if errors.Is(err, session.ErrTampered) {
				return response.Error(response.ErrBadRequest.WithError(err))
			}
			return response.Error(err)
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			data, err := cfg.Transport.Load(ctx)
			if err != nil {
				if errors.Is(err, session.ErrTampered) {
					cfg.Logger.WarnContext(ctx, "tampered session rejected", "error", err)
					return cfg.ErrorHandler(ctx, err)
				}
				cfg.Logger.ErrorContext(ctx, "session load failed", "error", err)
				data = session.Data{}
			}
			if data == nil {
				data = session.Data{}
			}

			ctx.SetValue(sessionKey{}, data)

			resp := next(ctx)

			if err := cfg.Transport.Store(ctx, GetSession(ctx)); err != nil {
				cfg.Logger.ErrorContext(ctx, "session store failed", "error", err)
				return cfg.ErrorHandler(ctx, err)
			}

			return resp
		}
	}
}

// GetSession returns the request's session mapping. Outside the session
// middleware it returns an empty mapping.
func GetSession(ctx handler.Context) session.Data {
	if ctx == nil {
		return session.Data{}
	}
	if data, ok := ctx.Value(sessionKey{}).(session.Data); ok && data != nil {
		return data
	}
	return session.Data{}
}

// SetSession replaces the request's session mapping. The middleware
// stores whatever mapping is present after the handler returns.
func SetSession(ctx handler.Context, data session.Data) {
	if data == nil {
		data = session.Data{}
	}
	ctx.SetValue(sessionKey{}, data)
}

// ClearSession empties the request's session mapping, which makes the
// transport expire its cookies or delete its store entry.
func ClearSession(ctx handler.Context) {
	ctx.SetValue(sessionKey{}, session.Data{})
}
