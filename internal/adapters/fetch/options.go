package fetch

import (
	"net/http"
	"time"

	"github.com/okian/pucktally/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets how many attempts a fetch makes before giving up.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		if retries > 0 {
			c.maxRetries = retries
		}
	}
}

// WithBackoff sets the linear backoff step between attempts.
func WithBackoff(step time.Duration) Option {
	return func(c *Client) {
		if step > 0 {
			c.backoff = step
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg logger.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.logger = lg
		}
	}
}
