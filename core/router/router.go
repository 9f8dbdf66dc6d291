package router

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/core/handler"
)

var (
	// ErrNilResponse is passed to the error handler when a handler
	// returns a nil Response.
	ErrNilResponse = errors.New("handler returned nil response")

	// ErrNoContextFactory panics at registration when a custom context
	// type is used without providing WithContextFactory.
	ErrNoContextFactory = errors.New("no context factory provided and C is not *Context")
)

// Router dispatches HTTP requests to type-safe handlers with middleware
// chaining. Dispatch is delegated to net/http's ServeMux, so patterns
// follow its "METHOD /path/{param}" syntax.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Handle(pattern string, h handler.HandlerFunc[C])

	// Use appends middleware; must be called before any route is
	// registered so every route sees the full chain.
	Use(middlewares ...handler.Middleware[C])
}

// New creates a router. The default *Context type works out of the box;
// custom context types require WithContextFactory.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	m := &mux[C]{
		serveMux:     http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

type mux[C handler.Context] struct {
	serveMux     *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	routed       bool
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.serveMux.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C])    { m.handle(http.MethodGet, pattern, h) }
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C])   { m.handle(http.MethodPost, pattern, h) }
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C])    { m.handle(http.MethodPut, pattern, h) }
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) { m.handle(http.MethodDelete, pattern, h) }
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) { m.handle("", pattern, h) }

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.routed {
		panic("sessionkit: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	m.routed = true

	h := chain(m.middlewares, fn)

	if method != "" {
		pattern = method + " " + pattern
	}

	m.serveMux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := m.newContext(w, r)

		response := h(ctx)
		if response == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := response(w, r); err != nil {
			m.logger.ErrorContext(ctx, "response rendering failed", "error", err)
			m.errorHandler(ctx, err)
		}
	})
}

// chain wraps fn with middlewares so the first one registered is the
// outermost.
func chain[C handler.Context](middlewares []handler.Middleware[C], fn handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		fn = middlewares[i](fn)
	}
	return fn
}

func defaultErrorHandler[C handler.Context](ctx C, err error) {
	status := http.StatusInternalServerError
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		status = coded.StatusCode()
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}
