package simple_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/app/simple"
	"github.com/dmitrymomot/sessionkit/core/handler"
	"github.com/dmitrymomot/sessionkit/core/response"
	"github.com/dmitrymomot/sessionkit/middleware"
)

func newApp(t *testing.T) *simple.App {
	t.Helper()
	t.Setenv("SESSION_SECRET", "0123456789abcdef")
	t.Setenv("COOKIE_SECRETS", "0123456789abcdef0123456789abcdef")

	app, err := simple.NewApp()
	require.NoError(t, err)
	return app
}

func TestAppServesSessionBackedRoutes(t *testing.T) {
	app := newApp(t)

	app.Router().Get("/me", func(ctx *simple.Context) handler.Response {
		data := middleware.GetSession(ctx)
		data["user_id"] = "u-42"
		middleware.SetSession(ctx, data)
		return response.JSON(data)
	})

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id": "u-42"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Result().Cookies(), "session should be written to cookies")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAppLivenessSkipsSession(t *testing.T) {
	app := newApp(t)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}
