package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenProvider returns the current bearer token, or false when no session
// exists. The client reads it once per call, so swapping the provider takes
// effect for the next call without touching calls already in flight.
type TokenProvider func() (string, bool)

// Request describes a single HTTP call. Method defaults to GET. Nil values
// in Params are omitted from the URL entirely; everything else is
// string-coerced. Body is JSON-serialized unless it is a *FormData or a raw
// io.Reader, which pass through unchanged.
type Request struct {
	Path   string
	Method string
	Params map[string]any
	Body   any
	Header http.Header
}

// Client issues requests against a single base origin, injecting the bearer
// token and normalizing failures into *APIError. It keeps no queue, cache or
// retry state: every call is one attempt.
type Client struct {
	baseURL *url.URL
	http    *http.Client

	mu            sync.RWMutex
	tokenProvider TokenProvider
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, e.g. for custom
// transports in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenProvider sets the initial token provider.
func WithTokenProvider(provider TokenProvider) Option {
	return func(c *Client) {
		c.tokenProvider = provider
	}
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// New creates a client for the given base URL. The base is normalized to end
// in a slash so relative paths resolve under it rather than replacing its
// last segment.
func New(baseURL string, opts ...Option) (*Client, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return nil, fmt.Errorf("apiclient: base URL is required")
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("apiclient: unsupported scheme %q", parsed.Scheme)
	}

	c := &Client{
		baseURL: parsed,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewFromConfig creates a client from environment-driven configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	withTimeout := append([]Option{WithTimeout(cfg.Timeout)}, opts...)
	return New(cfg.BaseURL, withTimeout...)
}

// SetTokenProvider swaps the token source. The swap is visible to the next
// call; calls already in flight keep the token they captured.
func (c *Client) SetTokenProvider(provider TokenProvider) {
	c.mu.Lock()
	c.tokenProvider = provider
	c.mu.Unlock()
}

// BaseURL returns the normalized base origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) currentToken() (string, bool) {
	c.mu.RLock()
	provider := c.tokenProvider
	c.mu.RUnlock()

	if provider == nil {
		return "", false
	}
	return provider()
}

// buildURL resolves the request path against the base URL and appends every
// non-nil query parameter, string-coerced.
func (c *Client) buildURL(path string, params map[string]any) (string, error) {
	rel, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("apiclient: invalid path %q: %w", path, err)
	}

	target := c.baseURL.ResolveReference(rel)

	if len(params) > 0 {
		query := target.Query()
		for key, value := range params {
			if value == nil {
				continue
			}
			query.Set(key, coerceParam(value))
		}
		target.RawQuery = query.Encode()
	}

	return target.String(), nil
}

// coerceParam renders a query value as a string. Booleans serialize as
// "true"/"false", matching the backend's model binding.
func coerceParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Do executes the request and returns the raw JSON payload on success. Any
// failure, transport-level or HTTP, surfaces as *APIError. A response that
// claims JSON but does not parse yields a nil payload, not an error, so
// empty bodies on 204-style successes stay benign.
func (c *Client) Do(ctx context.Context, r Request) (json.RawMessage, error) {
	target, err := c.buildURL(r.Path, r.Params)
	if err != nil {
		return nil, err
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	body, bodyContentType, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for key, values := range r.Header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	if token, ok := c.currentToken(); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if bodyContentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", bodyContentType)
	}

	// Tunneled dev environments (ngrok, localtunnel) serve an HTML
	// interstitial unless asked not to; without the bypass header the JSON
	// parser would see a warning page.
	if header, value, ok := tunnelBypass(req.URL.Hostname()); ok {
		req.Header.Set(header, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload := decodePayload(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp.StatusCode, payload)
	}

	return payload, nil
}

// encodeBody prepares the request body and its content type. Structured
// bodies become JSON; *FormData and io.Reader pass through unchanged. A
// FormData carries its own multipart content type with the boundary.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *FormData:
		reader, err := b.Reader()
		if err != nil {
			return nil, "", err
		}
		return reader, b.ContentType(), nil
	case io.Reader:
		return b, "", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("apiclient: encode body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// decodePayload extracts the JSON body if the response claims one. A parse
// failure is swallowed into a nil payload by contract.
func decodePayload(resp *http.Response) json.RawMessage {
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil || len(data) == 0 || !json.Valid(data) {
		return nil
	}
	return data
}

// Call executes the request and decodes the payload into T. An empty payload
// leaves T at its zero value.
func Call[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var result T

	payload, err := c.Do(ctx, r)
	if err != nil {
		return result, err
	}
	if len(payload) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(payload, &result); err != nil {
		return result, fmt.Errorf("apiclient: decode response: %w", err)
	}
	return result, nil
}
