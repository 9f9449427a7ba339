package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/wire"
)

const (
	defaultHTTPConnectTimeout = 5 * time.Second
	defaultHTTPTLSTimeout     = 5 * time.Second
	defaultHTTPTimeout        = 10 * time.Second

	maxBodyBytes = 8 << 20
)

func defaultClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: defaultHTTPConnectTimeout,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultHTTPTLSTimeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

type HTTPOption func(*HTTPClient)

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.http = hc }
}

// HTTPClient reads the user list with a single GET to a fixed endpoint.
type HTTPClient struct {
	endpoint  string
	healthURL string
	http      *http.Client
}

func NewHTTPClient(endpoint string, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: scheme must be http or https", endpoint)
	}

	c := &HTTPClient{
		endpoint:  u.String(),
		healthURL: healthURL(u),
		http:      defaultClient(defaultHTTPTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// healthURL replaces the last path element of the endpoint with "health":
// http://host/users becomes http://host/health.
func healthURL(endpoint *url.URL) string {
	h := *endpoint
	h.RawQuery = ""
	h.Fragment = ""
	h.RawPath = ""
	dir := path.Dir(h.Path)
	if h.Path == "" || dir == "." {
		dir = "/"
	}
	h.Path = path.Join(dir, "health")
	return h.String()
}

func (c *HTTPClient) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.http.Do(req)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.get(ctx, c.endpoint)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: status %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, unavailable(err)
	}
	if len(body) > maxBodyBytes {
		return nil, malformed(errors.New("response body too large"))
	}

	list, err := wire.DecodeUsers(body)
	if err != nil {
		return nil, malformed(err)
	}
	return fromWire(list), nil
}

// Ping checks the service's health endpoint, falling back to the list
// endpoint itself when the service has no health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.get(ctx, c.healthURL)
	if err != nil {
		return unavailable(err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode != http.StatusNotFound:
		return fmt.Errorf("%w: health status %s", ErrUnavailable, resp.Status)
	}

	resp, err = c.get(ctx, c.endpoint)
	if err != nil {
		return unavailable(err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.Status)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
