// Package leaderboard reads the externally aggregated submission counts by
// field of study. It is strictly read-only and strictly best-effort: the
// leaderboard being absent or broken must never block a submission.
package leaderboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vyyka/fptpray/internal/logging"
)

// maxResponseBody bounds how much leaderboard JSON we are willing to read.
const maxResponseBody = 1 << 20

// Entry is one aggregated row: a field of study and its submission count.
type Entry struct {
	Major string `json:"major"`
	Count int    `json:"count"`
}

// Client fetches leaderboard entries.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a leaderboard client. An empty endpoint disables
// fetching entirely.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch returns the current entries. With no endpoint configured it returns
// empty, not an error. Network or parse failures are logged and read as
// empty for the same reason: ranking is cosmetic, submissions are not.
func (c *Client) Fetch(ctx context.Context) []Entry {
	if c.endpoint == "" {
		return nil
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		logging.Logger().Warn("invalid leaderboard endpoint", "error", err)
		return nil
	}
	q := u.Query()
	q.Set("action", "getLeaderboard")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logging.Logger().Warn("failed to build leaderboard request", "error", err)
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Logger().Warn("leaderboard fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Logger().Warn("leaderboard fetch returned error status", "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		logging.Logger().Warn("failed to read leaderboard response", "error", err)
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		logging.Logger().Warn("failed to parse leaderboard response", "error", err)
		return nil
	}
	return entries
}
