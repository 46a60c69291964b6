package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accessKey = "My-Access-Key"

func TestBuild_Defaults(t *testing.T) {
	req, err := Build(BaseConfig{AccessKey: "K"}, CallOptions{
		Endpoint: "/photos",
		Query:    Query{}.Add("page", 1).Add("per_page", 5),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.unsplash.com/photos?page=1&per_page=5", req.URL.String())
	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, "Client-ID K", req.Header.Get(HeaderAuthorization))
	assert.Equal(t, "v1", req.Header.Get(HeaderAcceptVersion))
	assert.Empty(t, req.Header.Get(HeaderContentType))
	assert.Nil(t, req.Body)
}

func TestBuild_HeaderLayers(t *testing.T) {
	cfg := BaseConfig{
		AccessKey: accessKey,
		RequestOptions: RequestOptions{
			Header: http.Header{"X-Custom-Header": {"foo"}},
		},
	}
	call := CallOptions{
		Endpoint: "/photos",
		Options:  NewRequestOptions(WithHeader(map[string]string{"cache-control": "no-cache"})),
	}

	req, err := Build(cfg, call)
	require.NoError(t, err)

	assert.Equal(t, "foo", req.Header.Get("X-Custom-Header"))
	assert.Equal(t, "no-cache", req.Header.Get("cache-control"))
	assert.Equal(t, "Client-ID "+accessKey, req.Header.Get("Authorization"))
	assert.Equal(t, "v1", req.Header.Get("Accept-Version"))
}

func TestBuild_HeaderPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		client http.Header
		call   http.Header
		key    string
		want   string
	}{
		{
			name:   "call overrides client ignoring case",
			client: http.Header{"x-trace": {"client"}},
			call:   http.Header{"X-TRACE": {"call"}},
			key:    "X-Trace",
			want:   "call",
		},
		{
			name:   "client overrides accept-version default",
			client: http.Header{"accept-version": {"v2"}},
			key:    HeaderAcceptVersion,
			want:   "v2",
		},
		{
			name: "call overrides accept-version default",
			call: http.Header{"Accept-Version": {"v3"}},
			key:  HeaderAcceptVersion,
			want: "v3",
		},
		{
			name:   "call overrides client and default together",
			client: http.Header{"Accept-Version": {"v2"}},
			call:   http.Header{"accept-version": {"v3"}},
			key:    HeaderAcceptVersion,
			want:   "v3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Build(
				BaseConfig{RequestOptions: RequestOptions{Header: tt.client}},
				CallOptions{Endpoint: "/x", Options: RequestOptions{Header: tt.call}},
			)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, req.Header.Values(tt.key))
		})
	}
}

func TestBuild_Authorization(t *testing.T) {
	t.Run("caller cannot replace it", func(t *testing.T) {
		req, err := Build(
			BaseConfig{
				AccessKey:      "K",
				RequestOptions: RequestOptions{Header: http.Header{"Authorization": {"Bearer client"}}},
			},
			CallOptions{
				Endpoint: "/me",
				Options:  RequestOptions{Header: http.Header{"authorization": {"Bearer call"}}},
			},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Client-ID K"}, req.Header.Values("Authorization"))
	})

	t.Run("absent without access key", func(t *testing.T) {
		req, err := Build(BaseConfig{APIURL: "https://proxy.example.com/unsplash"}, CallOptions{Endpoint: "/photos"})
		require.NoError(t, err)
		assert.Empty(t, req.Header.Values("Authorization"))
		assert.Equal(t, "https://proxy.example.com/unsplash/photos", req.URL.String())
	})
}

func TestBuild_APIVersion(t *testing.T) {
	req, err := Build(BaseConfig{APIVersion: "v2"}, CallOptions{Endpoint: "/stats/total"})
	require.NoError(t, err)
	assert.Equal(t, "v2", req.Header.Get(HeaderAcceptVersion))
}

func TestBuild_BodyAndMethod(t *testing.T) {
	body, err := EncodeBody(map[string]any{"title": "t"})
	require.NoError(t, err)

	req, err := Build(BaseConfig{}, CallOptions{Endpoint: "/collections", Method: MethodPost, Body: body})
	require.NoError(t, err)

	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, ContentTypeJSON, req.Header.Get(HeaderContentType))
	assert.JSONEq(t, `{"title":"t"}`, string(req.Body))

	// A caller content type wins over the default
	req, err = Build(BaseConfig{}, CallOptions{
		Endpoint: "/collections",
		Method:   MethodPost,
		Body:     body,
		Options:  NewRequestOptions(WithHeader(map[string]string{"content-type": "application/vnd.api+json"})),
	})
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.api+json", req.Header.Get(HeaderContentType))
}

func TestBuild_Passthrough(t *testing.T) {
	cfg := BaseConfig{RequestOptions: RequestOptions{
		Host:    "client.example.com",
		Cookies: []*http.Cookie{{Name: "a", Value: "client"}, {Name: "b", Value: "client"}},
	}}
	call := CallOptions{
		Endpoint: "/photos",
		Options: NewRequestOptions(
			WithHost("call.example.com"),
			WithClose(),
			WithCookie(&http.Cookie{Name: "b", Value: "call"}),
		),
	}

	req, err := Build(cfg, call)
	require.NoError(t, err)

	assert.Equal(t, "call.example.com", req.Host)
	assert.True(t, req.Close)
	require.Len(t, req.Cookies, 2)
	assert.Equal(t, "client", req.Cookies[0].Value)
	assert.Equal(t, "call", req.Cookies[1].Value)

	// Client options survive when the call does not set them
	req, err = Build(cfg, CallOptions{Endpoint: "/photos"})
	require.NoError(t, err)
	assert.Equal(t, "client.example.com", req.Host)
	assert.False(t, req.Close)
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	clientHeader := http.Header{"X-A": {"1"}}
	cfg := BaseConfig{AccessKey: "K", RequestOptions: RequestOptions{Header: clientHeader}}

	req, err := Build(cfg, CallOptions{Endpoint: "/photos"})
	require.NoError(t, err)
	req.Header.Set("X-A", "changed")

	assert.Equal(t, http.Header{"X-A": {"1"}}, clientHeader)
}

func TestBuild_InvalidAddress(t *testing.T) {
	_, err := Build(BaseConfig{APIURL: "://bad"}, CallOptions{Endpoint: "/photos"})
	assert.Error(t, err)

	_, err = Build(BaseConfig{APIURL: "relative/path"}, CallOptions{Endpoint: "/photos"})
	assert.Error(t, err)
}
