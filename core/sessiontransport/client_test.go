package sessiontransport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/session"
	"github.com/dmitrymomot/sessionkit/core/sessiontransport"
)

// testContext is a minimal handler.Context for exercising transports
// without a router.
type testContext struct {
	context.Context
	w      http.ResponseWriter
	r      *http.Request
	values map[any]any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{Context: r.Context(), w: w, r: r, values: make(map[any]any)}
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(key, val any)               { c.values[key] = val }

func (c *testContext) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.Context.Value(key)
}

func newCookieManager(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	return m
}

func newClientBackend(t *testing.T, opts ...session.Option) *session.ClientBackend {
	t.Helper()
	b, err := session.New([]byte("0123456789abcdef"), opts...)
	require.NoError(t, err)
	return b
}

// requestWithCookies builds a request carrying every non-expired cookie
// the recorder emitted, as a browser would on the next request.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			continue
		}
		r.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	return r
}

func TestClientRoundTrip(t *testing.T) {
	t.Parallel()

	backend := newClientBackend(t, session.WithChunkSize(64))
	transport := sessiontransport.NewClient(backend, newCookieManager(t))

	data := session.Data{"user_id": "u-42", "admin": true, "theme": "dark"}

	rec := httptest.NewRecorder()
	storeCtx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, transport.Store(storeCtx, data))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	for _, ck := range cookies {
		assert.Regexp(t, `^session-\d+$`, ck.Name)
		assert.Positive(t, ck.MaxAge)
	}

	loadCtx := newTestContext(httptest.NewRecorder(), requestWithCookies(t, rec))
	loaded, err := transport.Load(loadCtx)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestClientDefaultsLargeSession(t *testing.T) {
	t.Parallel()

	transport := sessiontransport.NewClient(newClientBackend(t), newCookieManager(t))

	data := session.Data{"payload": strings.Repeat("a", 6000)}

	rec := httptest.NewRecorder()
	storeCtx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, transport.Store(storeCtx, data))

	headers := rec.Header().Values("Set-Cookie")
	require.Greater(t, len(headers), 1)
	for _, h := range headers {
		assert.LessOrEqual(t, len(h), cookie.MaxCookieSize)
	}

	loadCtx := newTestContext(httptest.NewRecorder(), requestWithCookies(t, rec))
	loaded, err := transport.Load(loadCtx)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestClientLoadNoCookies(t *testing.T) {
	t.Parallel()

	transport := sessiontransport.NewClient(newClientBackend(t), newCookieManager(t))

	ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	data, err := transport.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestClientLoadIgnoresUnrelatedCookies(t *testing.T) {
	t.Parallel()

	transport := sessiontransport.NewClient(newClientBackend(t), newCookieManager(t))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	r.AddCookie(&http.Cookie{Name: "session-abc", Value: "garbage"})
	r.AddCookie(&http.Cookie{Name: "session-01", Value: "garbage"})

	data, err := transport.Load(newTestContext(httptest.NewRecorder(), r))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestClientLoadTamperedCookie(t *testing.T) {
	t.Parallel()

	backend := newClientBackend(t)
	transport := sessiontransport.NewClient(backend, newCookieManager(t))

	rec := httptest.NewRecorder()
	storeCtx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, transport.Store(storeCtx, session.Data{"user_id": "u-42"}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		value := []byte(ck.Value)
		if value[10] == 'A' {
			value[10] = 'B'
		} else {
			value[10] = 'A'
		}
		r.AddCookie(&http.Cookie{Name: ck.Name, Value: string(value)})
	}

	_, err := transport.Load(newTestContext(httptest.NewRecorder(), r))
	require.ErrorIs(t, err, session.ErrTampered)
}

func TestClientStoreEmptyExpiresInbound(t *testing.T) {
	t.Parallel()

	backend := newClientBackend(t, session.WithChunkSize(64))
	transport := sessiontransport.NewClient(backend, newCookieManager(t))

	rec := httptest.NewRecorder()
	storeCtx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, transport.Store(storeCtx, session.Data{"user_id": "u-42"}))
	inbound := rec.Result().Cookies()
	require.NotEmpty(t, inbound)

	clearRec := httptest.NewRecorder()
	clearCtx := newTestContext(clearRec, requestWithCookies(t, rec))
	require.NoError(t, transport.Store(clearCtx, session.Data{}))

	expired := clearRec.Result().Cookies()
	require.Len(t, expired, len(inbound))
	for _, ck := range expired {
		assert.Negative(t, ck.MaxAge)
		assert.Empty(t, ck.Value)
	}
}

func TestClientStoreExpiresStaleChunks(t *testing.T) {
	t.Parallel()

	backend := newClientBackend(t, session.WithChunkSize(32))
	transport := sessiontransport.NewClient(backend, newCookieManager(t))

	big := session.Data{"a": "aaaaaaaaaaaaaaaaaaaa", "b": "bbbbbbbbbbbbbbbbbbbb", "c": "cccccccccccccccccccc"}
	rec := httptest.NewRecorder()
	require.NoError(t, transport.Store(
		newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), big))
	bigCount := len(rec.Result().Cookies())
	require.Greater(t, bigCount, 1)

	smallRec := httptest.NewRecorder()
	smallCtx := newTestContext(smallRec, requestWithCookies(t, rec))
	require.NoError(t, transport.Store(smallCtx, session.Data{"a": "a"}))

	var fresh, expired int
	for _, ck := range smallRec.Result().Cookies() {
		if ck.MaxAge < 0 {
			expired++
		} else {
			fresh++
		}
	}
	assert.Less(t, fresh, bigCount)
	assert.Equal(t, bigCount, fresh+expired)

	// The browser's resulting cookie jar must round-trip cleanly.
	loaded, err := transport.Load(
		newTestContext(httptest.NewRecorder(), requestWithCookies(t, smallRec)))
	require.NoError(t, err)
	assert.Equal(t, session.Data{"a": "a"}, loaded)
}

func TestClientStoreEmptyNoInboundIsNoop(t *testing.T) {
	t.Parallel()

	transport := sessiontransport.NewClient(newClientBackend(t), newCookieManager(t))

	rec := httptest.NewRecorder()
	ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, transport.Store(ctx, nil))
	assert.Empty(t, rec.Result().Cookies())
}
