package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the per-request deadline applied when no timeout is
// configured. The deadline is enforced by the underlying http.Client, not
// by this layer.
const DefaultTimeout = 30 * time.Second

// Config holds the settings for an API client.
type Config struct {
	// BaseURL is the root URL of the feed-aggregation service,
	// e.g. "https://reader.example.org". Required.
	BaseURL string

	// Username and Password enable HTTP basic authentication.
	Username string
	Password string

	// APIKey enables token authentication via the X-Auth-Token header.
	// When set it takes precedence over basic authentication.
	APIKey string

	// Timeout is the per-request deadline. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient optionally replaces the internal http.Client. When set,
	// Timeout is ignored and the supplied client is used as-is.
	HTTPClient *http.Client
}

// Client is the low-level HTTP API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client. Trailing slashes on the base URL are
// stripped so that "https://host" and "https://host/" produce identical
// request URLs.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// GetText issues a GET request against a plain-text endpoint and returns
// the raw body.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", newAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(body), nil
}

// Post issues a POST request with a JSON body and decodes the JSON
// response into result.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, path, nil, reader, "application/json")
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PostRaw issues a POST request with an opaque body (e.g. an OPML blob)
// that is sent verbatim, not JSON-encoded.
func (c *Client) PostRaw(ctx context.Context, path, body string) error {
	resp, err := c.do(ctx, http.MethodPost, path, nil, strings.NewReader(body), "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// Put issues a PUT request. A nil body sends no payload. The JSON response
// is decoded into result when result is non-nil.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	reader, err := encodeBody(body)
	if err != nil {
		return err
	}
	contentType := ""
	if reader != nil {
		contentType = "application/json"
	}
	resp, err := c.do(ctx, http.MethodPut, path, nil, reader, contentType)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// do performs a single HTTP request. Transport-level failures (timeouts,
// connection errors) are returned unmodified so callers can inspect them
// with the net and net/url packages. There is no retry at this layer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	// Exactly one authentication mode is active per client. A configured
	// API key wins over basic credentials.
	if c.apiKey != "" {
		req.Header.Set("X-Auth-Token", c.apiKey)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	return c.httpClient.Do(req)
}

// decodeResponse classifies the response status: 200/201 decode a JSON
// body into result, 204 returns with no value, and anything else is
// translated into an *APIError.
func decodeResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if result == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusNoContent:
		return nil
	default:
		return newAPIError(resp)
	}
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
