package simple

import (
	"net/http"
	"time"
)

// Context is the application request context. It delegates
// context.Context methods to the request's context and keeps
// request-scoped values in a local map.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to
// the request context.
func (c *Context) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the value of the path parameter for the given key.
func (c *Context) Param(key string) string {
	return c.r.PathValue(key)
}
