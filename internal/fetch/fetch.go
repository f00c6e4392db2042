// Package fetch retrieves enclosure files over HTTP and persists them
// to the local filesystem.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNetwork marks transport-level fetch failures, including non-2xx
// responses.
var ErrNetwork = errors.New("fetch: network failure")

const defaultTimeout = 30 * time.Second

// Client fetches URLs with a fixed User-Agent header. Some feed hosts
// reject requests carrying the default Go agent, so the header is
// always set explicitly.
type Client struct {
	hc        *http.Client
	userAgent string
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads url and returns the response body. Any transport
// error or unexpected status wraps ErrNetwork.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrNetwork, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: get %s: unexpected status %s", ErrNetwork, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNetwork, url, err)
	}
	return data, nil
}
