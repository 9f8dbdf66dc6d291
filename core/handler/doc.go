// Package handler defines the request-processing contracts shared by
// the router and middlewares: a Context interface over the HTTP
// exchange, type-safe HandlerFunc and Middleware generics, and the
// Response render function.
//
// Handlers return a Response instead of writing directly, which keeps
// response generation separate from rendering and lets middlewares run
// after the handler but before anything reaches the wire:
//
//	func profile(ctx handler.Context) handler.Response {
//		name := ctx.Param("name")
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := fmt.Fprintf(w, "hello, %s", name)
//			return err
//		}
//	}
//
// Custom context types implement Context to expose application-specific
// accessors; middlewares stay generic over any C that satisfies the
// interface.
package handler
