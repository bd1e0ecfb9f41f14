package gemini

import (
	"net/http"
	"time"

	"github.com/petal-labs/facet/core"
)

// Config holds configuration for the Gemini client.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to https://generativelanguage.googleapis.com
	BaseURL string

	// HTTPClient is the HTTP client to use. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Timeout is the hard per-attempt timeout. Defaults to 60s.
	Timeout time.Duration

	// Retry is the transport retry policy. Defaults to core.DefaultRetryPolicy().
	Retry core.RetryPolicy

	// Hook receives retry-wait notifications. Defaults to a no-op.
	Hook core.ProgressHook
}

// DefaultBaseURL is the default Gemini API base URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultTimeout is the default per-attempt timeout.
const DefaultTimeout = 60 * time.Second

// Option configures the Gemini client.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithRetryPolicy sets the transport retry policy.
func WithRetryPolicy(r core.RetryPolicy) Option {
	return func(c *Config) {
		if r != nil {
			c.Retry = r
		}
	}
}

// WithProgressHook sets the hook notified before each transport retry wait.
func WithProgressHook(h core.ProgressHook) Option {
	return func(c *Config) {
		if h != nil {
			c.Hook = h
		}
	}
}
