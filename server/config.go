// Package server exposes the profile-view HTTP API.
package server

import (
	"os"
	"time"
)

// Config holds the server's environment-driven settings.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string
	// APIKey and APIHost configure the upstream profile provider.
	APIKey  string
	APIHost string
	// UpstreamTimeout bounds the single outbound fetch per request.
	UpstreamTimeout time.Duration
	// CORSEnabled toggles the permissive CORS middleware.
	CORSEnabled bool
}

// ConfigFromEnv builds a Config from environment variables:
// LINKVIEW_ADDR, RAPID_API_KEY, RAPID_API_HOST, LINKVIEW_TIMEOUT.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:            envOr("LINKVIEW_ADDR", ":8080"),
		APIKey:          os.Getenv("RAPID_API_KEY"),
		APIHost:         os.Getenv("RAPID_API_HOST"),
		UpstreamTimeout: 10 * time.Second,
		CORSEnabled:     true,
	}
	if v := os.Getenv("LINKVIEW_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.UpstreamTimeout = d
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
