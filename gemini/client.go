package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/petal-labs/facet/core"
)

// Client is a Gemini API client. Client is safe for concurrent use.
type Client struct {
	config Config
}

// New creates a new Gemini client with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	cfg := Config{
		APIKey:     core.NewSecret(apiKey),
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		Timeout:    DefaultTimeout,
		Retry:      core.DefaultRetryPolicy(),
		Hook:       core.NoopProgressHook{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{config: cfg}
}

// endpoint builds the generateContent URL for a model. The API key travels
// as a query parameter.
func (c *Client) endpoint(model string) string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.config.BaseURL, model, url.QueryEscape(c.config.APIKey.Expose()))
}

// send issues one logical request, retrying retryable failures per the
// configured policy. Rate limits back off with jitter, network failures and
// attempt expiries back off on the plain exponential schedule, and
// payload-too-large or gateway-timeout responses propagate immediately.
func (c *Client) send(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		respBody, err := c.doOnce(ctx, endpoint, body)
		if err == nil {
			return respBody, nil
		}

		// The caller's context takes priority over classification.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		delay, retry := c.config.Retry.NextDelay(attempt, err)
		if !retry {
			return nil, err
		}

		c.config.Hook.OnRetryWait(core.RetryWaitEvent{
			Retry: attempt,
			Delay: delay,
			Cause: err,
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// doOnce performs a single attempt under the hard per-attempt timeout and
// classifies the outcome.
func (c *Client) doOnce(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		// An expired attempt deadline is a retryable timeout; anything the
		// caller canceled propagates as-is.
		if ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, newTimeoutError()
		}
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody)
	}

	return respBody, nil
}
