package http

import (
	"net/http"
	"net/url"
)

// BaseConfig is the client-level part of a request: credentials, base address,
// API version and the passthrough options applied to every call.
type BaseConfig struct {
	// AccessKey enables "Authorization: Client-ID <key>" when set
	AccessKey string
	// APIURL replaces DefaultAPIURL, typically a proxy that holds the key server-side
	APIURL string
	// APIVersion is sent as Accept-Version, DefaultAPIVersion when empty
	APIVersion string
	// RequestOptions are applied to every call before the call's own options
	RequestOptions RequestOptions
}

// CallOptions describe a single call
type CallOptions struct {
	// Endpoint is the path with path params already substituted
	Endpoint string
	// Method defaults to GET
	Method string
	// Query is appended to the address in order
	Query Query
	// Body is the serialized payload, see EncodeBody
	Body []byte
	// Options are the per-call passthrough options
	Options RequestOptions
}

// Request is the output of Build: the target address plus transport options
type Request struct {
	URL     *url.URL
	Method  string
	Header  http.Header
	Body    []byte
	Host    string
	Close   bool
	Cookies []*http.Cookie
}

// Build merges client configuration and call options into a Request.
//
// Headers are layered defaults < client < call, then Authorization is set from the
// access key so callers cannot replace it. Passthrough options merge client first
// with call options winning. The only error is an address that does not parse,
// which means the base address or endpoint is malformed.
func Build(cfg BaseConfig, opts CallOptions) (*Request, error) {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	method := opts.Method
	if method == "" {
		method = DefaultMethod
	}

	builder, err := FromURL(apiURL + opts.Endpoint)
	if err != nil {
		return nil, err
	}
	builder.QueryParams(opts.Query)

	defaults := http.Header{HeaderAcceptVersion: {version}}
	if opts.Body != nil {
		defaults.Set(HeaderContentType, ContentTypeJSON)
	}

	header := mergeHeaders(defaults, cfg.RequestOptions.Header, opts.Options.Header)
	if cfg.AccessKey != "" {
		header.Set(HeaderAuthorization, authorizationScheme+cfg.AccessKey)
	}

	rest := mergePassthrough(cfg.RequestOptions, opts.Options)

	return &Request{
		URL:     builder.URL(),
		Method:  method,
		Header:  header,
		Body:    opts.Body,
		Host:    rest.Host,
		Close:   rest.Close,
		Cookies: rest.Cookies,
	}, nil
}
