package health

import (
	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/response"
)

// Liveness indicates the service process is running. Always returns
// "ALIVE" with 200 OK, no dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// NoContent returns HTTP 204 without a body, for high-frequency checks.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}
