// Package transport implements the HTTP collaborator behind the resource
// managers: API-key authentication, the JSON wire codec and file downloads.
// It knows nothing about resource types; managers hand it paths and
// payloads.
package transport

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"
)

// APIKeyHeader is the HTTP header carrying the tracker API key.
const APIKeyHeader = "X-Redmine-API-Key"

// APIError is an error response from the tracker API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("server returned status %d: %v", e.StatusCode, e.Errors)
	}
	return e.Message
}

// Client is a thin HTTP client for a single tracker instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the tracker at baseURL (no trailing slash).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the tracker base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs a GET request and returns the decoded JSON object.
func (c *Client) Get(path string, query url.Values) (map[string]any, error) {
	return c.do(http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(path string, body map[string]any) (map[string]any, error) {
	return c.do(http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(path string, body map[string]any) (map[string]any, error) {
	return c.do(http.MethodPut, path, nil, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(path string, query url.Values) (map[string]any, error) {
	return c.do(http.MethodDelete, path, query, nil)
}

func (c *Client) do(method, path string, query url.Values, body map[string]any) (map[string]any, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := oj.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("cannot reach tracker at %s: %v", c.baseURL, err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("tracker request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", req.Header.Get("X-Request-Id"))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.parseError(resp.StatusCode, data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T", parsed)
	}
	return obj, nil
}

// parseError extracts the tracker's {"errors": [...]} shape when present.
func (c *Client) parseError(status int, data []byte) error {
	apiErr := &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("server returned status %d: %s", status, string(data)),
	}
	if parsed, err := oj.Parse(data); err == nil {
		if obj, ok := parsed.(map[string]any); ok {
			if raw, ok := obj["errors"].([]any); ok {
				for _, e := range raw {
					apiErr.Errors = append(apiErr.Errors, fmt.Sprintf("%v", e))
				}
			}
		}
	}
	return apiErr
}

// Download streams the content at contentURL into dir under filename,
// returning the written path. Attachments carry absolute content URLs, so
// the URL is used verbatim.
func (c *Client) Download(contentURL, dir, filename string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, contentURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Message: fmt.Sprintf("cannot reach %s: %v", contentURL, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", c.parseError(resp.StatusCode, data)
	}

	if filename == "" {
		filename = filepath.Base(contentURL)
	}
	dest := filepath.Join(dir, filename)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return dest, nil
}
