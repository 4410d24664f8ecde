package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("RAPID_API_KEY", "")

	_, err := New(Config{Addr: ":0"}, nil)

	require.Error(t, err)
}

func TestNewServesHealthz(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := New(Config{Addr: ":0", APIKey: "test-key", CORSEnabled: true}, logger)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := New(Config{Addr: ":0", APIKey: "test-key", CORSEnabled: true}, logger)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/profile", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
