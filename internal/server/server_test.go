package server

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	handler "github.com/MKhiriev/gnap-bootstrap/internal/handler/http"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/service"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *handler.Handler {
	documentStore := store.NewMemoryStore()
	svcs := service.NewServices(documentStore, nil, 0, nil, logger.Nop())
	return handler.NewHandler(svcs, documentStore, nil, models.NewAppBuildInfo("", "", ""), logger.Nop())
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandler(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(newTestHandler(), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/healthz")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	srv.Shutdown()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(newTestHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.RunServer())
}
