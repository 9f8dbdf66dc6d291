package handler

import (
	"context"
	"net/http"
)

// Context is the contract for request contexts. It extends the standard
// context with access to the HTTP exchange and request-scoped storage,
// which middlewares use to hand values (such as the session mapping)
// to handlers.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
