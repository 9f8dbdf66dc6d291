// Package response provides handler.Response constructors for the
// bodies session-backed handlers typically return, plus the HTTPError
// type used to carry status codes through error handlers.
package response
