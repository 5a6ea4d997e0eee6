package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBody bounds how much of a sink response we keep around.
const maxResponseBody = 4096

// HTTPClient issues single-attempt JSON POST requests.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with the given timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// SendResult contains the result of a send operation.
type SendResult struct {
	StatusCode int
	Body       []byte
	Duration   time.Duration
	Error      error
}

// Post sends a single JSON POST request. No retries: one invocation, one
// network call. Error is set only on transport failures; HTTP status
// interpretation is left to the caller.
func (c *HTTPClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) *SendResult {
	result := &SendResult{}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		result.Error = fmt.Errorf("failed to create request: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "fptpray/1.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		result.Error = fmt.Errorf("request failed: %w", err)
		result.Duration = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Body, _ = io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	result.Duration = time.Since(start)
	return result
}

// Success reports whether the response carried a 2xx status.
func (r *SendResult) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}
