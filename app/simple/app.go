package simple

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sessionkit/core/config"
	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/health"
	"github.com/dmitrymomot/sessionkit/core/logger"
	"github.com/dmitrymomot/sessionkit/core/router"
	"github.com/dmitrymomot/sessionkit/core/server"
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/core/sessiontransport"
	"github.com/dmitrymomot/sessionkit/middleware"
)

// App is a prewired session-backed web application: environment config,
// structured logging, encrypted client-side sessions, and a graceful
// HTTP server. Handlers are registered on Router before Run.
type App struct {
	config  Config
	router  router.Router[*Context]
	server  *server.Server
	cookies *cookie.Manager
	backend *session.ClientBackend
	log     *slog.Logger
}

// AppOption overrides a default subsystem before wiring completes.
type AppOption func(*App) error

// NewApp loads configuration from the environment and wires the
// application together. Options replace individual subsystems.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		log:    logger.New(logger.WithProduction(cfg.AppName)),
	}
	if cfg.Env == "development" {
		app.log = logger.New(logger.WithDevelopment(cfg.AppName))
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.cookies == nil {
		cm, err := cookie.NewFromConfig(cfg.Cookie)
		if err != nil {
			return nil, err
		}
		app.cookies = cm
	}

	if app.backend == nil {
		backend, err := session.NewFromConfig(cfg.Session)
		if err != nil {
			return nil, err
		}
		app.backend = backend
	}

	if app.router == nil {
		transport := sessiontransport.NewClient(app.backend, app.cookies)
		r := router.New(
			router.WithContextFactory(newContext),
			router.WithLogger[*Context](app.log),
		)
		r.Use(
			middleware.RequestID[*Context](),
			middleware.LoggingWithLogger[*Context](app.log),
			middleware.SessionWithConfig(middleware.SessionConfig[*Context]{
				Transport: transport,
				Logger:    app.log,
				Skip: func(ctx *Context) bool {
					return ctx.Request().URL.Path == "/health/live"
				},
			}),
		)
		r.Get("/health/live", health.Liveness[*Context])
		app.router = r
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.log))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// Router exposes the application router for route registration.
func (a *App) Router() router.Router[*Context] {
	return a.router
}

// Logger exposes the application logger.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Run serves the application until the context is canceled, then shuts
// down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.router))
	return g.Wait()
}

// WithLogger replaces the application logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.log = log
		return nil
	}
}

// WithRouter replaces the prewired router, skipping the default
// middleware stack.
func WithRouter(r router.Router[*Context]) AppOption {
	return func(app *App) error {
		if r == nil {
			return errors.New("router cannot be nil")
		}
		app.router = r
		return nil
	}
}

// WithServer replaces the HTTP server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}

// WithCookieManager replaces the cookie manager.
func WithCookieManager(cm *cookie.Manager) AppOption {
	return func(app *App) error {
		if cm == nil {
			return errors.New("cookie manager cannot be nil")
		}
		app.cookies = cm
		return nil
	}
}

// WithSessionBackend replaces the session backend.
func WithSessionBackend(backend *session.ClientBackend) AppOption {
	return func(app *App) error {
		if backend == nil {
			return errors.New("session backend cannot be nil")
		}
		app.backend = backend
		return nil
	}
}
