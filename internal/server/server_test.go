package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/handler"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}

	svcs, err := service.NewServices(config.StructuredConfig{App: config.App{Version: "test"}}, logger.Nop())
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(svcs, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, 5*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
}

// TestServer_ServeAndGracefulShutdown serves a real request and then
// cancels the context the way a signal would.
func TestServer_ServeAndGracefulShutdown(t *testing.T) {
	s := newTestServer(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/add?num1=2&num2=3")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"result":5}`, string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t)
	s.httpServer.server.Addr = busy.Addr().String()

	err = s.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening on")
}

func TestServer_RunServerReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newTestServer(t)
	s.httpServer.server.Addr = busy.Addr().String()

	var srv Server = s
	err = srv.RunServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), busy.Addr().String())
}
