package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}

	// Rewrite the https endpoint to hit the plain-HTTP test server.
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		req = req.Clone(req.Context())
		req.URL.Scheme = "http"
		req.URL.Host = u.Host
		return http.DefaultTransport.RoundTrip(req)
	})

	client, err := New(
		WithAPIKey("test-key"),
		WithHost("upstream.test"),
		WithHTTPClient(&http.Client{Transport: transport}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("RAPID_API_KEY", "")
	if _, err := New(); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("New() error = %v, want ErrNoAPIKey", err)
	}
}

func TestNewReadsEnv(t *testing.T) {
	t.Setenv("RAPID_API_KEY", "env-key")
	t.Setenv("RAPID_API_HOST", "alt.upstream.test")
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.apiKey != "env-key" || client.apiHost != "alt.upstream.test" {
		t.Errorf("got key=%q host=%q", client.apiKey, client.apiHost)
	}
}

func TestFetchDecodesProfile(t *testing.T) {
	var gotKey, gotHost, gotUser string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		gotUser = r.URL.Query().Get("username")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "jane-doe", "firstName": "Jane", "headline": "Engineer"}`))
	})

	doc, err := client.Fetch(context.Background(), "jane-doe")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.Username != "jane-doe" || doc.Headline != "Engineer" {
		t.Errorf("got %+v", doc)
	}
	if gotKey != "test-key" || gotHost != "upstream.test" || gotUser != "jane-doe" {
		t.Errorf("request headers/query: key=%q host=%q user=%q", gotKey, gotHost, gotUser)
	}
}

func TestFetchStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrProfileNotFound},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.Fetch(context.Background(), "jane-doe")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchServerError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := client.Fetch(context.Background(), "jane-doe")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Fetch() error = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Error(), "502") {
		t.Errorf("Error() = %q", httpErr.Error())
	}
}

func TestFetchMissingUsername(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"firstName": "Jane"}`))
	})
	_, err := client.Fetch(context.Background(), "jane-doe")
	if !errors.Is(err, ErrMissingUsername) {
		t.Errorf("Fetch() error = %v, want ErrMissingUsername", err)
	}
}

func TestFetchBadJSON(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})
	if _, err := client.Fetch(context.Background(), "jane-doe"); err == nil {
		t.Error("Fetch() should fail on a non-JSON body")
	}
}
