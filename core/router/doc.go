// Package router provides a small type-safe HTTP router over net/http's
// ServeMux: generic context types, middleware chaining, and centralized
// error handling. It exists to host the session middleware in real
// request flows; it deliberately adds no routing algorithm of its own.
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.Session[*router.Context](transport))
//
//	r.Get("/profile/{name}", func(ctx *router.Context) handler.Response {
//		return func(w http.ResponseWriter, req *http.Request) error {
//			_, err := fmt.Fprintf(w, "hello, %s", ctx.Param("name"))
//			return err
//		}
//	})
//
//	http.ListenAndServe(":8080", r)
//
// Patterns use ServeMux syntax ("/path/{param}"); Param reads path
// values from the request.
package router
