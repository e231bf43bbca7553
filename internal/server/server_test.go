package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/handler"
	httpHandler "github.com/geo-waqf/geowaqf/internal/handler/http"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "test" }

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, cfg config.Server, closers ...closerFunc) *server {
	t.Helper()

	services := &service.Services{AppInfoService: stubAppInfo{}}
	handlers := &handler.Handlers{HTTP: httpHandler.NewHandler(services, cfg, logger.Nop())}

	cs := make([]io.Closer, 0, len(closers))
	for _, c := range closers {
		cs = append(cs, c)
	}

	srv, err := NewServer(handlers, cfg, logger.Nop(), cs...)
	require.NoError(t, err)

	return srv.(*server)
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":5000"}},
		{"nil HTTP handler", &handler.Handlers{}, config.Server{HTTPAddress: ":5000"}},
		{"no address", &handler.Handlers{HTTP: httpHandler.NewHandler(nil, config.Server{}, logger.Nop())}, config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":5000", RequestTimeout: time.Minute, ShutdownTimeout: 5 * time.Second}

	s := newTestServer(t, cfg)

	assert.Equal(t, ":5000", s.httpServer.server.Addr)
	assert.Equal(t, time.Minute, s.httpServer.server.ReadTimeout)
	assert.Greater(t, s.httpServer.server.WriteTimeout, cfg.RequestTimeout)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, s.shutdownTimeout)
}

func TestNewServer_NoRequestTimeoutMeansNoWriteDeadline(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: ":5000"})

	assert.Zero(t, s.httpServer.server.WriteTimeout)
}

// ─────────────────────────────────────────────
// Lifecycle
// ─────────────────────────────────────────────

func TestServe_ServesUntilCanceled(t *testing.T) {
	addr := freeAddress(t)
	closed := make(chan struct{})
	s := newTestServer(t, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, func() error {
		close(closed)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/version/", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-closed:
	default:
		t.Fatal("closer was not called on shutdown")
	}
}

func TestServe_ListenErrorStillRunsClosers(t *testing.T) {
	called := false
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:-1"}, func() error {
		called = true
		return errors.New("already removed")
	})

	err := s.serve(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
	assert.True(t, called)
}

func TestShutdown_NotStarted(t *testing.T) {
	calls := 0
	s := newTestServer(t, config.Server{HTTPAddress: ":5000"}, func() error {
		calls++
		return nil
	}, func() error {
		calls++
		return nil
	})

	assert.NotPanics(t, s.Shutdown)
	assert.Equal(t, 2, calls)
}
