package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestServer_ListenLogsPortOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := New(0, okHandler(), zap.New(core))

	require.NoError(t, srv.Listen(context.Background()))
	t.Cleanup(func() { _ = srv.listener.Close() })

	entries := logs.FilterMessage("Server running on port").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(srv.Port()), entries[0].ContextMap()["port"])
	assert.NotZero(t, srv.Port())

	assert.Error(t, srv.Listen(context.Background()))
	assert.Len(t, logs.FilterMessage("Server running on port").All(), 1)
}

func TestServer_PortInUse(t *testing.T) {
	first := New(0, okHandler(), zaptest.NewLogger(t))
	require.NoError(t, first.Listen(context.Background()))
	t.Cleanup(func() { _ = first.listener.Close() })

	second := New(first.Port(), okHandler(), zaptest.NewLogger(t))
	err := second.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestServer_ServeBeforeListen(t *testing.T) {
	srv := New(0, okHandler(), zaptest.NewLogger(t))
	assert.Error(t, srv.Serve())
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := New(0, okHandler(), zaptest.NewLogger(t))
	require.NoError(t, srv.Listen(context.Background()))

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", srv.Port()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}

	_, err = net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", srv.Port()), 200*time.Millisecond)
	assert.Error(t, err)
}
