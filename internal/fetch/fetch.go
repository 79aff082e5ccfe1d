// Package fetch downloads the upstream emoji map.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"emoji-generator/internal/source"
)

// DefaultURL is the upstream emoji map.
const DefaultURL = "https://raw.githubusercontent.com/iDvel/rime-ice/refs/heads/main/others/emoji-map.txt"

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 30 * time.Second

// UserAgent is sent with every request.
var UserAgent = "emoji-generator/dev"

// ErrStatus is returned when the upstream answers with a non-2xx status.
var ErrStatus = errors.New("unexpected HTTP status")

// Client fetches text sources over HTTP.
type Client struct {
	client *http.Client
}

// NewClient creates a Client whose requests time out after timeout.
// A non-positive timeout uses DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch GETs url and decodes the body as UTF-8 text.
func (c *Client) Fetch(ctx context.Context, url string) (source.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return source.Source{}, fmt.Errorf("creating request for %s: %w", url, err)
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return source.Source{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return source.Source{}, fmt.Errorf("fetching %s: %w %d", url, ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return source.Source{}, fmt.Errorf("reading %s: %w", url, err)
	}

	return source.Decode(url, body)
}
