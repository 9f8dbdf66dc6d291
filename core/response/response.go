package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/sessionkit/core/handler"
)

// Render executes the response against the context's writer. Rendering
// failures fall back to a plain 500.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if content == "" {
			return nil
		}
		_, err := w.Write([]byte(content))
		return err
	}
}

// JSON creates an application/json response with 200 OK status. The
// value is encoded directly to the response writer.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom
// status code. A zero status means 200, or 204 when the value is nil.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}
		w.WriteHeader(status)
		if status == http.StatusNoContent || status == http.StatusNotModified {
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}

// NoContent creates an empty 204 response.
func NoContent() handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// Redirect creates a 303 See Other redirect, the right status after a
// form post that mutated the session.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with a custom 3xx status.
func RedirectWithStatus(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, status)
		return nil
	}
}

// Error returns a response that propagates the error to the router's
// error handler instead of writing anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
