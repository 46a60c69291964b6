package http

import (
	"net/http"
	"slices"
)

// RequestOptions is the transport passthrough bundle. It is set once on the client
// and again per call; method and body are never part of it.
type RequestOptions struct {
	// Header is layered over the builder defaults, client headers first then call headers
	Header http.Header
	// Host overrides the Host header sent on the wire
	Host string
	// Close asks the transport to close the connection after the exchange
	Close bool
	// Cookies are attached to the request, keyed by name
	Cookies []*http.Cookie
}

// RequestOption configures per-call RequestOptions
type RequestOption func(*RequestOptions)

// WithHeader sets multiple headers for the request
func WithHeader(header map[string]string) RequestOption {
	return func(opt *RequestOptions) {
		if opt.Header == nil {
			opt.Header = make(http.Header, len(header))
		}
		for k, v := range header {
			opt.Header.Set(k, v)
		}
	}
}

// WithHeaders copies h into the request headers, replacing same-named keys
func WithHeaders(h http.Header) RequestOption {
	return func(opt *RequestOptions) {
		if opt.Header == nil {
			opt.Header = make(http.Header, len(h))
		}
		for k, vs := range h {
			opt.Header[http.CanonicalHeaderKey(k)] = slices.Clone(vs)
		}
	}
}

// WithHost overrides the Host header
func WithHost(host string) RequestOption {
	return func(opt *RequestOptions) {
		opt.Host = host
	}
}

// WithClose marks the connection to be closed after the exchange
func WithClose() RequestOption {
	return func(opt *RequestOptions) {
		opt.Close = true
	}
}

// WithCookie attaches a cookie, replacing an earlier one with the same name
func WithCookie(c *http.Cookie) RequestOption {
	return func(opt *RequestOptions) {
		opt.Cookies = mergeCookies(opt.Cookies, []*http.Cookie{c})
	}
}

// NewRequestOptions applies opts to an empty bundle
func NewRequestOptions(opts ...RequestOption) RequestOptions {
	var ro RequestOptions
	for _, o := range opts {
		if o != nil {
			o(&ro)
		}
	}
	return ro
}

// Clone returns a deep copy
func (o RequestOptions) Clone() RequestOptions {
	cp := o
	cp.Header = o.Header.Clone()
	cp.Cookies = slices.Clone(o.Cookies)
	return cp
}

// mergePassthrough merges everything but headers: base first, then override
// winning on collision. Headers are layered separately by mergeHeaders.
func mergePassthrough(base, override RequestOptions) RequestOptions {
	merged := RequestOptions{
		Host:    base.Host,
		Close:   base.Close || override.Close,
		Cookies: mergeCookies(base.Cookies, override.Cookies),
	}
	if override.Host != "" {
		merged.Host = override.Host
	}
	return merged
}

// mergeCookies keeps first-seen order; a later cookie replaces an earlier one with the same name
func mergeCookies(layers ...[]*http.Cookie) []*http.Cookie {
	index := make(map[string]int)
	var out []*http.Cookie
	for _, layer := range layers {
		for _, c := range layer {
			if c == nil {
				continue
			}
			if i, ok := index[c.Name]; ok {
				out[i] = c
				continue
			}
			index[c.Name] = len(out)
			out = append(out, c)
		}
	}
	return out
}

// mergeHeaders layers headers in increasing precedence. Keys are canonicalized so a
// later layer replaces any same-named key regardless of case.
func mergeHeaders(layers ...http.Header) http.Header {
	size := 0
	for _, l := range layers {
		size += len(l)
	}

	merged := make(http.Header, size)
	for _, layer := range layers {
		for k, vs := range layer {
			merged[http.CanonicalHeaderKey(k)] = slices.Clone(vs)
		}
	}
	return merged
}
