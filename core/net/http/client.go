package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Client performs exchanges for built requests on top of a standard http.Client
type Client struct {
	client *http.Client
}

// Option configures the HTTP client
type Option func(*Client)

// WithClient sets a custom HTTP client
func WithClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// New creates a new transport client
func New(opts ...Option) *Client {
	c := &Client{
		client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HTTPClient returns the underlying standard client
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// Do sends req and returns the raw response. Cancellation and deadlines come from ctx.
func (c *Client) Do(ctx context.Context, req *Request) (*http.Response, error) {
	httpReq, err := c.createRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.client.Do(httpReq)
}

// createRequest converts a built Request into an *http.Request
func (c *Client) createRequest(ctx context.Context, req *Request) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}

	httpReq.Header = req.Header.Clone()
	if req.Host != "" {
		httpReq.Host = req.Host
	}
	httpReq.Close = req.Close
	for _, cookie := range req.Cookies {
		httpReq.AddCookie(cookie)
	}

	return httpReq, nil
}
