// Package ripple provides a client for the Ripple Data API.
package ripple

import (
	"os"
	"time"
)

const (
	defaultBaseURL = "https://data.ripple.com/v2/exchanges/Binance/charts"
	defaultPair    = "xrpusd"

	// defaultTimeout bounds the whole fetch; there is no retry or backoff.
	defaultTimeout = 5 * time.Second
)

// Config holds configuration for the Ripple Data API client.
type Config struct {
	BaseURL string        // Charts endpoint base (e.g. "https://data.ripple.com/v2/exchanges/Binance/charts")
	Pair    string        // Trading pair path segment (e.g. "xrpusd")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Ripple Data API configuration from environment variables,
// falling back to the public endpoint defaults.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("RIPPLE_BASE_URL"),
		Pair:    os.Getenv("RIPPLE_PAIR"),
		Timeout: defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Pair == "" {
		cfg.Pair = defaultPair
	}
	return cfg
}
