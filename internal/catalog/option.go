package catalog

import (
	"net/http"
	"time"
)

type config struct {
	httpClient   *http.Client
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option is a function that sets a value in a config.
type Option func(*config)

func getOpts(opts []Option) config {
	cfg := config{
		timeout:      defaultTimeout,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHTTPClient sets the underlying http client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithTimeout bounds a whole Fetch, retries included. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

// WithRetryMax sets how many times a failed request is retried. The default
// of 0 makes a single attempt.
func WithRetryMax(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.retryMax = n
		}
	}
}

// WithRetryWait sets the backoff bounds between retries.
func WithRetryWait(min, max time.Duration) Option {
	return func(cfg *config) {
		cfg.retryWaitMin = min
		cfg.retryWaitMax = max
	}
}
