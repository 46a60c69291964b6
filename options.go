package unsplash

import (
	"net/http"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/log"
	"github.com/kochabx/unsplash/metrics"
)

// Result is the outcome of a call, see khttp.Result
type Result[T any] = khttp.Result[T]

// RequestOption adjusts the headers, host, cookies or connection handling of a call
type RequestOption = khttp.RequestOption

// Per-call request options
var (
	WithHeader  = khttp.WithHeader
	WithHeaders = khttp.WithHeaders
	WithHost    = khttp.WithHost
	WithClose   = khttp.WithClose
	WithCookie  = khttp.WithCookie
)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sends requests through hc instead of a client built from Config.Timeout
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.doer = khttp.New(khttp.WithClient(hc))
		}
	}
}

// WithDoer replaces the transport entirely
func WithDoer(d khttp.Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithLogger sets the logger for request and result lines, log.G by default.
// The Authorization credential is masked before logging.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every call on m
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}
