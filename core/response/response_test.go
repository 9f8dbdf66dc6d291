package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, response.String("hello")(rec, r))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hello", rec.Body.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.JSON(map[string]any{"user_id": "u-42"})(rec, r))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "u-42", body["user_id"])
	})

	t.Run("zero status nil value is 204", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, response.JSONWithStatus(nil, 0)(rec, r))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, response.Redirect("/dashboard")(rec, r))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	err := response.Error(sentinel)(rec, r)
	require.ErrorIs(t, err, sentinel)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := response.ErrUnauthorized.WithError(errors.New("no session"))
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode())
	assert.Equal(t, "no session", err.Details["cause"])

	// The original sentinel stays untouched.
	assert.Nil(t, response.ErrUnauthorized.Details)

	var coded interface{ StatusCode() int }
	require.ErrorAs(t, error(err), &coded)
	assert.Equal(t, http.StatusUnauthorized, coded.StatusCode())
}
