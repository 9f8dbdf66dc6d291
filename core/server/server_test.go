package server_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/core/server"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server at %s did not come up", url)
	return nil
}

func TestServerServesAndStops(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr, server.WithShutdownTimeout(time.Second))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, handler) }()

	resp := waitForServer(t, "http://"+addr+"/")
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop())
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after shutdown")
	}
}

func TestServerRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	run := srv.Run(ctx, http.NewServeMux())

	done := make(chan error, 1)
	go func() { done <- run() }()

	resp := waitForServer(t, "http://"+addr+"/")
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty addr", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{})
		require.ErrorIs(t, err, server.ErrEmptyAddr)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.Config{
			Addr:            ":8080",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		})
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}
