// Package fetch provides the retrying HTTP client shared by the stats
// and roster adapters.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
)

// Defaults for client construction.
const (
	defaultTimeout    = 45 * time.Second
	defaultMaxRetries = 3
	backoffStep       = 2 * time.Second
	maxBodySize       = 10 << 20 // 10 MiB cap on response bodies
)

// browserHeaders are sent with every request. The stats site rejects
// requests that do not look like a browser.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Connection":      "keep-alive",
}

// Client fetches URLs with retries and linear backoff.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	source     string
	logger     logger.Logger
}

// New creates a fetch client. The source name labels metrics and logs.
func New(source string, opts ...Option) *Client {
	c := &Client{
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		backoff:    backoffStep,
		source:     source,
		logger:     logger.Named("fetch"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// Get fetches the URL, retrying transient failures. Each attempt sends
// the browser header set. Backoff grows linearly: 2s, 4s, 6s.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn(ctx, "retrying fetch",
				logger.String("source", c.source),
				logger.String("url", url),
				logger.Int("attempt", attempt+1),
				logger.Error(lastErr))

			if err := sleep(ctx, time.Duration(attempt)*c.backoff); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
			}
		}

		body, err := c.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	metrics.RecordFetchError(c.source)
	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrFetchFailed, url, c.maxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, val := range browserHeaders {
		req.Header.Set(key, val)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordFetch(c.source, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
