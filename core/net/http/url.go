package http

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// URLBuilder composes an absolute address and appends query params in the order
// they are added, keeping any query already present on the base address.
type URLBuilder struct {
	base  url.URL
	query []Param
}

// FromURL creates a builder from an absolute address
func FromURL(rawURL string) (*URLBuilder, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("parse url %q: address must be absolute", rawURL)
	}

	return &URLBuilder{base: *u}, nil
}

// MustFromURL is like FromURL but panics on error
func MustFromURL(rawURL string) *URLBuilder {
	b, err := FromURL(rawURL)
	if err != nil {
		panic(err)
	}
	return b
}

// Query appends a single query param
func (b *URLBuilder) Query(key, value string) *URLBuilder {
	b.query = append(b.query, Param{Key: key, Value: value})
	return b
}

// QueryParams appends every defined param of q in order
func (b *URLBuilder) QueryParams(q Query) *URLBuilder {
	b.query = append(b.query, q.Defined()...)
	return b
}

// URL builds the final address
func (b *URLBuilder) URL() *url.URL {
	u := b.base
	if len(b.query) == 0 {
		return &u
	}

	var raw strings.Builder
	raw.WriteString(u.RawQuery)
	for _, p := range b.query {
		if raw.Len() > 0 {
			raw.WriteByte('&')
		}
		writeQueryPair(&raw, p.Key, p.Value.(string))
	}
	u.RawQuery = raw.String()
	u.ForceQuery = false
	return &u
}

// String implements fmt.Stringer
func (b *URLBuilder) String() string {
	return b.URL().String()
}

// Clone returns an independent copy of the builder
func (b *URLBuilder) Clone() *URLBuilder {
	cp := &URLBuilder{base: b.base, query: slices.Clone(b.query)}
	if b.base.User != nil {
		u := *b.base.User
		cp.base.User = &u
	}
	return cp
}

// writeQueryPair writes key=value with form-style escaping
func writeQueryPair(b *strings.Builder, key, value string) {
	b.WriteString(url.QueryEscape(key))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}
