package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultAPIHost is the RapidAPI host serving profile documents.
const DefaultAPIHost = "real-time-people-company-data.p.rapidapi.com"

// Errors returned by Fetch.
var (
	ErrNoAPIKey        = errors.New("no API key configured")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRateLimited     = errors.New("rate limited")
	ErrMissingUsername = errors.New("profile document has no username")
)

// HTTPError represents a non-success upstream response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Client fetches raw profile documents from the upstream provider. Each
// Fetch issues exactly one request; retry, caching and rate limiting are
// deliberately out of scope.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	apiHost    string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	apiHost    string
}

// WithAPIKey sets the upstream API key explicitly.
func WithAPIKey(key string) Option {
	return func(c *config) { c.apiKey = key }
}

// WithHost overrides the upstream API host.
func WithHost(host string) Option {
	return func(c *config) { c.apiHost = host }
}

// WithHTTPClient sets a custom HTTP client; its timeout policy is the
// caller's to own.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) { c.httpClient = httpClient }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a Client. The API key is taken from WithAPIKey or the
// RAPID_API_KEY environment variable; the host from WithHost or
// RAPID_API_HOST, defaulting to DefaultAPIHost.
func New(opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv("RAPID_API_KEY")
	}
	if cfg.apiKey == "" {
		return nil, fmt.Errorf("%w: set RAPID_API_KEY or use WithAPIKey", ErrNoAPIKey)
	}

	if cfg.apiHost == "" {
		cfg.apiHost = os.Getenv("RAPID_API_HOST")
	}
	if cfg.apiHost == "" {
		cfg.apiHost = DefaultAPIHost
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		httpClient: cfg.httpClient,
		logger:     cfg.logger,
		apiKey:     cfg.apiKey,
		apiHost:    cfg.apiHost,
	}, nil
}

// Fetch retrieves the raw profile document for a username with a single
// best-effort request.
func (c *Client) Fetch(ctx context.Context, username string) (*RawProfile, error) {
	endpoint := fmt.Sprintf("https://%s/?username=%s", c.apiHost, url.QueryEscape(username))

	c.logger.InfoContext(ctx, "fetching profile", "username", username, "host", c.apiHost)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", cerr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, username)
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, &HTTPError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response failed: %w", err)
	}

	doc, err := DecodeProfile(body)
	if err != nil {
		return nil, fmt.Errorf("profile decoding failed: %w", err)
	}
	if doc.Username == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingUsername, username)
	}

	c.logger.InfoContext(ctx, "profile fetched",
		"username", doc.Username,
		"positions", len(doc.FullPositions)+len(doc.Position))

	return doc, nil
}
