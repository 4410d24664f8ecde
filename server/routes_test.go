package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99Yash/linkview/linkedin"
)

type stubFetcher struct {
	doc *linkedin.RawProfile
	err error

	gotUsername string
}

func (s *stubFetcher) Fetch(_ context.Context, username string) (*linkedin.RawProfile, error) {
	s.gotUsername = username
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func testRouter(fetcher Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	RegisterRoutes(r, fetcher, logger)
	return r
}

func postProfile(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := testRouter(&stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileFromURL(t *testing.T) {
	fetcher := &stubFetcher{doc: &linkedin.RawProfile{
		Username:  "jane-doe",
		FirstName: "Jane",
		LastName:  "Doe",
	}}
	r := testRouter(fetcher)

	w := postProfile(t, r, gin.H{"url": "https://www.linkedin.com/in/jane-doe"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane-doe", fetcher.gotUsername)

	var resp struct {
		Profile linkedin.View        `json:"profile"`
		Raw     *linkedin.RawProfile `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Profile.Title)
	require.NotNil(t, resp.Raw)
	assert.Equal(t, "jane-doe", resp.Raw.Username)
}

func TestProfileFromUsername(t *testing.T) {
	fetcher := &stubFetcher{doc: &linkedin.RawProfile{Username: "jane-doe"}}
	r := testRouter(fetcher)

	w := postProfile(t, r, gin.H{"username": "jane-doe"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane-doe", fetcher.gotUsername)
}

func TestProfileInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"company url", gin.H{"url": "https://linkedin.com/company/acme"}},
		{"wrong host", gin.H{"url": "https://example.com/in/jane-doe"}},
		{"denylisted username", gin.H{"username": "acme-company"}},
		{"malformed username", gin.H{"username": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{doc: &linkedin.RawProfile{Username: "jane-doe"}}
			r := testRouter(fetcher)

			w := postProfile(t, r, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, fetcher.gotUsername, "invalid input must never reach upstream")
		})
	}
}

func TestProfileBadJSONBody(t *testing.T) {
	r := testRouter(&stubFetcher{})
	req := httptest.NewRequest(http.MethodPost, "/api/profile", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", linkedin.ErrProfileNotFound, http.StatusNotFound},
		{"rate limited", linkedin.ErrRateLimited, http.StatusTooManyRequests},
		{"missing username", linkedin.ErrMissingUsername, http.StatusBadGateway},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"upstream 500", &linkedin.HTTPError{URL: "https://x", StatusCode: 500}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRouter(&stubFetcher{err: tt.err})

			w := postProfile(t, r, gin.H{"username": "jane-doe"})

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
