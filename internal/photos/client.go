package photos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Service fetches the photo listing. It is implemented by *Client and can be
// substituted in tests.
type Service interface {
	FetchPhotos(ctx context.Context) ([]Photo, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the photos HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	validate  *validator.Validate
}

const (
	// DefaultBaseURL serves the amphibians listing under /photos.
	DefaultBaseURL   = "https://android-kotlin-fun-mars-server.appspot.com/"
	DefaultTimeout   = 10 * time.Second
	defaultUserAgent = "amphibians/0.1"
	photosPath       = "photos"
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests, keeping its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			dup := *hc
			c.http = &dup
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: defaultUserAgent,
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchPhotos retrieves the photo listing in server order.
func (c *Client) FetchPhotos(ctx context.Context) ([]Photo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Photo
	reqURL, err := c.do(ctx, photosPath, &payload)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, &ProtocolError{URL: reqURL, Err: errors.New("expected a JSON array, got null")}
	}
	for i := range payload {
		if err := c.validate.Struct(payload[i]); err != nil {
			return nil, &ProtocolError{URL: reqURL, Err: fmt.Errorf("photo %d: %w", i, err)}
		}
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) (string, error) {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path}).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return reqURL, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return reqURL, &TransportError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return reqURL, &ProtocolError{URL: reqURL, StatusCode: resp.StatusCode}
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(dest); err != nil {
		return reqURL, decodeFailure(reqURL, resp.StatusCode, err)
	}
	// The body must hold exactly one JSON value.
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return reqURL, nil
	case err == nil:
		return reqURL, &ProtocolError{URL: reqURL, StatusCode: resp.StatusCode, Err: errors.New("trailing data after JSON value")}
	default:
		return reqURL, decodeFailure(reqURL, resp.StatusCode, fmt.Errorf("trailing data after JSON value: %w", err))
	}
}

func decodeFailure(reqURL string, status int, err error) error {
	if isNetworkFailure(err) {
		return &TransportError{URL: reqURL, Err: err}
	}
	return &ProtocolError{URL: reqURL, StatusCode: status, Err: err}
}

// isNetworkFailure reports whether a body read failed because of the
// connection rather than the content.
func isNetworkFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base_url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
