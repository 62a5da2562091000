package connectivity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tidewise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticProbe(t *testing.T) {
	p := NewStaticProbe(true)
	assert.True(t, p.Online(context.Background()))

	p.SetOnline(false)
	assert.False(t, p.Online(context.Background()))
}

func TestHTTPProbe(t *testing.T) {
	status := http.StatusNoContent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	p := NewHTTPProbe(&config.ConnectivityConfig{ProbeURL: srv.URL, Timeout: time.Second}, discardLogger())
	assert.True(t, p.Online(context.Background()))

	status = http.StatusNotFound
	assert.True(t, p.Online(context.Background()), "any answer below 500 means the link is up")

	status = http.StatusBadGateway
	assert.False(t, p.Online(context.Background()))

	srv.Close()
	assert.False(t, p.Online(context.Background()))
}

func TestNew_SelectsMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	p, err := New(cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &StaticProbe{}, p)
	assert.True(t, p.Online(context.Background()))

	cfg.Connectivity.Mode = "http"
	_, err = New(cfg, discardLogger())
	assert.Error(t, err)

	cfg.Connectivity.ProbeURL = "http://127.0.0.1:9/health"
	p, err = New(cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &HTTPProbe{}, p)

	cfg.Connectivity.Mode = "satellite"
	_, err = New(cfg, discardLogger())
	assert.Error(t, err)
}
