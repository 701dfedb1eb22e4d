package api

import (
	"bytes"
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

	"github.com/google/uuid"

	"github.com/atomicstack/recipebox/internal/auth"
)

const maxErrorBody = 512

// Client talks to the recipe service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	session auth.Session
	timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithSession attaches the signed-in user's credentials to every request.
func WithSession(s auth.Session) Option {
	return func(c *Client) { c.session = s }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient builds a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("base url required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", trimmed)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	c := &Client{
		baseURL: u,
		http:    defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func defaultHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{Transport: transport}
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Session returns the credentials the client sends.
func (c *Client) Session() auth.Session {
	return c.session
}

// endpoint joins the base URL and an already escaped path.
func (c *Client) endpoint(escapedPath string, query url.Values) string {
	u := *c.baseURL
	raw := c.baseURL.EscapedPath() + escapedPath
	path, err := url.PathUnescape(raw)
	if err != nil {
		path = raw
	}
	u.Path = path
	u.RawPath = raw
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do performs a request and decodes the envelope. Transport-level problems are
// returned as *TransportError, success=false as *ApplicationError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (envelope, error) {
	var env envelope
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return env, &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return env, &TransportError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authz := c.session.Authorization(); authz != "" {
		req.Header.Set("Authorization", authz)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return env, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		// Some deployments answer failures with a JSON envelope and a 4xx/5xx.
		var failed envelope
		if json.Unmarshal(snippet, &failed) == nil && !failed.Success && failed.Message != "" {
			return env, &ApplicationError{Op: op, Message: failed.Message}
		}
		detail := strings.TrimSpace(string(snippet))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return env, &TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(detail)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return env, &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.Success {
		return env, &ApplicationError{Op: op, Message: env.Message}
	}
	return env, nil
}
