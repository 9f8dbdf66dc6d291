package handler

import "net/http"

// Response renders an HTTP response: it sets headers, status code, and
// writes the body. Rendering errors are handled by the router's error
// handler, not by the handler itself.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler over a custom context type.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors raised during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a handler to add cross-cutting behavior. Middlewares
// compose outside-in: the first registered runs first on the way in and
// last on the way out.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
