package http

import (
	"context"
	"net/http"
)

// Doer performs a single exchange for a built Request
type Doer interface {
	Do(ctx context.Context, req *Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface
type DoerFunc func(ctx context.Context, req *Request) (*http.Response, error)

// Do calls f(ctx, req)
func (f DoerFunc) Do(ctx context.Context, req *Request) (*http.Response, error) {
	return f(ctx, req)
}
