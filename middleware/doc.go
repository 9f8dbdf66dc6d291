// Package middleware provides HTTP middleware for session handling and
// the cross-cutting concerns around it: request logging and request ID
// generation.
//
// All middleware works with the handler.Context interface and composes
// through the router:
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.Session[*router.Context](transport),
//	)
//
// The session middleware accepts any Transport: chunked encrypted
// cookies (sessiontransport.Client), a store-backed ID cookie
// (sessiontransport.Server), or bearer tokens (sessiontransport.JWT).
package middleware
