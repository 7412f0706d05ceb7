// Package http provides a Figma REST API implementation of
// figyaml.FileFetcher.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/figyaml/figyaml"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Figma REST API endpoint.
const DefaultBaseURL = "https://api.figma.com"

// DefaultFetchTimeout is the default timeout for API requests. Design
// files can run to many megabytes, so it is generous.
const DefaultFetchTimeout = 60 * time.Second

// Ensure Client implements figyaml.FileFetcher at compile time.
var _ figyaml.FileFetcher = (*Client)(nil)

// Client fetches design files from the Figma REST API.
type Client struct {
	token   string
	baseURL string
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultFetchTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithRateLimit caps outgoing requests at rps requests per second, per
// Figma API etiquette.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client authenticating with the given personal
// access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// FetchFile downloads and decodes the file with the given key.
func (c *Client) FetchFile(ctx context.Context, key string, ids ...string) (*figyaml.File, error) {
	data, err := c.FetchFileJSON(ctx, key, ids...)
	if err != nil {
		return nil, err
	}

	var file figyaml.File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, figyaml.Errorf(figyaml.EINTERNAL, "decoding file %q: %v", key, err)
	}
	return &file, nil
}

// FetchFileJSON downloads the raw JSON document for the given key.
func (c *Client) FetchFileJSON(ctx context.Context, key string, ids ...string) ([]byte, error) {
	if key == "" {
		return nil, figyaml.Errorf(figyaml.EINVALID, "file key required")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	u := c.baseURL + "/v1/files/" + url.PathEscape(key)
	if len(ids) > 0 {
		q := url.Values{}
		q.Set("ids", strings.Join(ids, ","))
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, figyaml.Errorf(figyaml.EUNAUTHORIZED, "access to file %q denied: check your Figma token", key)
	case http.StatusNotFound:
		return nil, figyaml.Errorf(figyaml.ENOTFOUND, "file %q not found", key)
	default:
		return nil, figyaml.Errorf(figyaml.EINTERNAL, "figma API returned HTTP %d for file %q", resp.StatusCode, key)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for %q: %w", key, err)
	}
	return body, nil
}
