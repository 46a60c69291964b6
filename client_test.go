package unsplash

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/errors"
	"github.com/kochabx/unsplash/log"
	"github.com/kochabx/unsplash/metrics"
	"github.com/kochabx/unsplash/models"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "access key", cfg: Config{AccessKey: accessKey}},
		{name: "proxy url", cfg: Config{APIURL: "https://proxy.example.com/unsplash"}},
		{name: "neither", cfg: Config{}},
		{name: "both", cfg: Config{AccessKey: accessKey, APIURL: "https://proxy.example.com"}, wantErr: true},
		{name: "relative url", cfg: Config{APIURL: "/api/unsplash"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, errors.FromError(err).GetCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "v1", client.base.APIVersion)
			assert.NotNil(t, client.Photos)
			assert.NotNil(t, client.Auth)
		})
	}
}

func TestNewTimeout(t *testing.T) {
	httpClient := func(c *Client) *http.Client {
		t.Helper()
		tc, ok := c.doer.(*khttp.Client)
		require.True(t, ok)
		return tc.HTTPClient()
	}

	client, err := New(Config{AccessKey: accessKey})
	require.NoError(t, err)
	assert.Zero(t, httpClient(client).Timeout)

	client, err = New(Config{AccessKey: accessKey, Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, httpClient(client).Timeout)
}

func TestProxyURLWithoutAuthorization(t *testing.T) {
	api, server := newFakeAPI(t)
	client, err := New(Config{APIURL: server.URL + "/unsplash"}, WithLogger(log.Nop()))
	require.NoError(t, err)

	res := client.Stats.Total(context.Background())
	require.True(t, res.OK())

	req := api.last(t)
	assert.Equal(t, "/unsplash/stats/total", req.Path)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestHeaderLayering(t *testing.T) {
	client, api := newTestClient(t, Config{
		AccessKey: accessKey,
		Headers:   map[string]string{"X-Client": "client", "X-Shared": "client"},
		RequestOptions: []RequestOption{
			WithCookie(&http.Cookie{Name: "session", Value: "client"}),
		},
	})

	res := client.Stats.Month(context.Background(),
		WithHeader(map[string]string{"x-shared": "call", "Authorization": "Bearer user-token", "Accept-Version": "v2"}),
		WithCookie(&http.Cookie{Name: "session", Value: "call"}),
	)
	require.True(t, res.OK())

	req := api.last(t)
	assert.Equal(t, "client", req.Header.Get("X-Client"))
	assert.Equal(t, "call", req.Header.Get("X-Shared"))
	assert.Equal(t, "v2", req.Header.Get("Accept-Version"))
	assert.Equal(t, "Client-ID "+accessKey, req.Header.Get("Authorization"))
	assert.Equal(t, "session=call", req.Header.Get("Cookie"))
}

func TestRandomCacheControl(t *testing.T) {
	client, api := newTestClient(t, Config{AccessKey: accessKey})
	ctx := context.Background()

	require.True(t, client.Photos.Random(ctx, RandomParams{}).OK())
	assert.Equal(t, "no-cache", api.last(t).Header.Get("Cache-Control"))

	require.True(t, client.Photos.Random(ctx, RandomParams{}, WithHeader(map[string]string{"cache-control": "max-age=60"})).OK())
	assert.Equal(t, "max-age=60", api.last(t).Header.Get("Cache-Control"))

	api.respond(http.StatusOK, "[]")
	require.True(t, client.Photos.RandomList(ctx, RandomParams{}).OK())
	assert.Equal(t, "count=1", api.last(t).Query)
	assert.Equal(t, "no-cache", api.last(t).Header.Get("Cache-Control"))
}

func TestArgumentValidation(t *testing.T) {
	client, api := newTestClient(t, Config{AccessKey: accessKey})
	ctx := context.Background()

	checks := map[string]*errors.Error{
		"Failed to fetch random photos.": client.Photos.RandomList(ctx, RandomParams{Count: 31}).Error,
		"Failed to fetch photos.":        client.Photos.List(ctx, PaginationParams{PerPage: 50}).Error,
		"Failed to fetch search photos.": client.Search.Photos(ctx, SearchPhotosParams{}).Error,
		"Failed to create collection.":   client.Collections.Create(ctx, CollectionParams{}).Error,
		"Failed to fetch topics.":        client.Topics.List(ctx, TopicListParams{OrderBy: "popular"}).Error,
		"Failed to fetch user stats.":    client.Users.Statistics(ctx, "jdoe", StatsParams{Quantity: 31}).Error,
		"Failed to authorize.":           client.Auth.UserAuthentication(ctx, OAuthParams{Code: "xyz"}).Error,
	}

	for message, err := range checks {
		require.NotNil(t, err, message)
		assert.Equal(t, message, err.Message)
		assert.True(t, errors.IsValidation(err), message)
		assert.NotNil(t, err.GetCause(), message)
	}
	assert.Zero(t, api.count())
}

func TestAuthenticationURL(t *testing.T) {
	client, err := New(Config{AccessKey: accessKey})
	require.NoError(t, err)

	u, ok := client.Auth.AuthenticationURL(AuthorizationParams{
		RedirectURI: "https://app.example/cb",
		Scopes:      []models.Scope{models.ScopePublic, models.ScopeReadUser},
	})
	require.True(t, ok)
	assert.Equal(t,
		"https://unsplash.com/oauth/authorize?client_id=My-Access-Key&redirect_uri=https%3A%2F%2Fapp.example%2Fcb&response_type=code&scope=public+read_user",
		u)

	u, ok = client.Auth.AuthenticationURL(AuthorizationParams{RedirectURI: "urn:ietf:wg:oauth:2.0:oob"})
	require.True(t, ok)
	assert.Contains(t, u, "&scope=public")

	proxied, err := New(Config{APIURL: "https://proxy.example.com"})
	require.NoError(t, err)
	u, ok = proxied.Auth.AuthenticationURL(AuthorizationParams{RedirectURI: "https://app.example/cb"})
	assert.False(t, ok)
	assert.Empty(t, u)
}

func TestUserAuthenticationWithoutAccessKey(t *testing.T) {
	api, server := newFakeAPI(t)
	api.respond(http.StatusOK, `{"access_token":"tok","token_type":"bearer","scope":"public read_user","created_at":1700000000}`)

	client, err := New(Config{APIURL: server.URL}, WithLogger(log.Nop()))
	require.NoError(t, err)

	res := client.Auth.UserAuthentication(context.Background(), OAuthParams{
		ClientSecret: "s3cr3t",
		RedirectURI:  "https://app.example/cb",
		Code:         "xyz",
		GrantType:    "authorization_code",
	})
	token, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.Equal(t, int64(1700000000), token.CreatedAt)

	assert.JSONEq(t,
		`{"grant_type":"authorization_code","client_secret":"s3cr3t","redirect_uri":"https://app.example/cb","code":"xyz"}`,
		api.last(t).Body)
}

func TestDecodeFailure(t *testing.T) {
	client, api := newTestClient(t, Config{AccessKey: accessKey})
	api.respond(http.StatusOK, `{"id": `)

	res := client.Photos.Get(context.Background(), "abc")
	require.False(t, res.OK())
	assert.True(t, errors.IsDecode(res.Error))
	assert.Equal(t, errors.NameDecode, res.Error.Name)
	assert.NotEqual(t, "Failed to fetch photo.", res.Error.Message)
}

func TestSuccessPayload(t *testing.T) {
	client, api := newTestClient(t, Config{AccessKey: accessKey})
	api.respond(http.StatusOK, `{"id":"abc","width":4000,"user":{"username":"jdoe"},"urls":{"regular":"https://images.example/r"}}`)

	photo, err := client.Photos.Get(context.Background(), "abc").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "abc", photo.ID)
	assert.Equal(t, 4000, photo.Width)
	assert.Equal(t, "jdoe", photo.User.Username)
	assert.Equal(t, "https://images.example/r", photo.URLs.Regular)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := New(Config{APIURL: server.URL}, WithLogger(log.Nop()))
	require.NoError(t, err)

	res := client.Stats.Total(context.Background())
	require.False(t, res.OK())
	assert.True(t, errors.IsTransport(res.Error))
	assert.Zero(t, res.Error.Code)
}

func TestContextCancel(t *testing.T) {
	client, _ := newTestClient(t, Config{AccessKey: accessKey})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := client.Stats.Total(ctx)
	require.False(t, res.OK())
	assert.True(t, errors.IsTransport(res.Error))
	assert.ErrorIs(t, res.Error, context.Canceled)
}

func TestWithDoer(t *testing.T) {
	var seen *khttp.Request
	doer := khttp.DoerFunc(func(ctx context.Context, req *khttp.Request) (*http.Response, error) {
		seen = req
		return &http.Response{
			StatusCode: http.StatusTeapot,
			Status:     "418 I'm a teapot",
			Body:       http.NoBody,
		}, nil
	})

	client, err := New(Config{AccessKey: accessKey}, WithDoer(doer), WithLogger(log.Nop()))
	require.NoError(t, err)

	res := client.Users.Current(context.Background())
	require.NotNil(t, seen)
	assert.Equal(t, "https://api.unsplash.com/me", seen.URL.String())
	assert.Equal(t, http.StatusTeapot, res.Error.Code)
	assert.Equal(t, "I'm a teapot", res.Error.Hint)
}

func TestMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	client, api := newTestClient(t, Config{AccessKey: accessKey}, WithMetrics(metrics.New(reg)))
	ctx := context.Background()

	require.True(t, client.Stats.Total(ctx).OK())
	api.respond(http.StatusInternalServerError, `{}`)
	require.False(t, client.Stats.Total(ctx).OK())

	expected := `
# HELP unsplash_request_failures_total Failed API calls by kind: status, decode or transport.
# TYPE unsplash_request_failures_total counter
unsplash_request_failures_total{kind="status",operation="total",resource="stats"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "unsplash_request_failures_total"))

	n, err := testutil.GatherAndCount(reg, "unsplash_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriter(&buf, log.WithLevel(zerolog.DebugLevel), log.WithCredentialRedaction())

	client, api := newTestClient(t, Config{AccessKey: accessKey}, WithLogger(logger))
	api.respond(http.StatusOK, "[]")

	require.True(t, client.Collections.Related(context.Background(), "c1").OK())

	out := buf.String()
	assert.Contains(t, out, `"message":"unsplash request"`)
	assert.Contains(t, out, `"message":"unsplash response"`)
	assert.Contains(t, out, `"operation":"related"`)
	assert.Contains(t, out, `"request_id"`)
	assert.Contains(t, out, "Client-ID ******")
	assert.NotContains(t, out, accessKey)
}

func TestRequestLoggingWithoutRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriter(&buf, log.WithLevel(zerolog.DebugLevel))

	client, api := newTestClient(t, Config{AccessKey: accessKey}, WithLogger(logger))
	api.respond(http.StatusOK, `{"id":"p1"}`)

	require.True(t, client.Photos.Get(context.Background(), "p1").OK())

	assert.Contains(t, buf.String(), "Client-ID ******")
	assert.NotContains(t, buf.String(), accessKey)
	assert.Equal(t, "Client-ID "+accessKey, api.last(t).Header.Get("Authorization"))
}

func TestMalformedEndpointSendsNothing(t *testing.T) {
	var sent int
	doer := khttp.DoerFunc(func(context.Context, *khttp.Request) (*http.Response, error) {
		sent++
		return nil, nil
	})
	client, err := New(Config{AccessKey: accessKey}, WithDoer(doer))
	require.NoError(t, err)

	op := operation{resource: "photos", name: "get", message: "Failed to fetch photo."}
	res := call[models.Photo](context.Background(), client, op, khttp.CallOptions{Endpoint: "/photos/%zz"})

	require.False(t, res.OK())
	assert.True(t, errors.IsValidation(res.Error))
	assert.Equal(t, "Failed to fetch photo.", res.Error.Message)
	assert.Zero(t, sent)
}

func TestConcurrentCalls(t *testing.T) {
	client, api := newTestClient(t, Config{AccessKey: accessKey})
	api.respond(http.StatusOK, `{"photos": 10}`)

	g, ctx := errgroup.WithContext(context.Background())
	for range 20 {
		g.Go(func() error {
			stats, err := client.Stats.Total(ctx).Unwrap()
			if err != nil {
				return err
			}
			if stats.Photos != 10 {
				return errors.New(0, "unexpected photos total %d", stats.Photos)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 20, api.count())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unsplash.yaml"), []byte(`
access_key: file-key
timeout: 5s
headers:
  X-App: gallery
`), 0o644))

	t.Setenv("UNSPLASH_ACCESS_KEY", "env-key")

	cfg, err := LoadConfig("unsplash.yaml", dir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.AccessKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, "gallery", cfg.Headers["x-app"])

	_, err = New(cfg)
	assert.NoError(t, err)
}

func TestLoadConfigEnvOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UNSPLASH_API_URL", "https://proxy.example.com")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.example.com", cfg.APIURL)
	assert.Empty(t, cfg.AccessKey)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadConfigRejectsBothCredentials(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UNSPLASH_ACCESS_KEY", accessKey)
	t.Setenv("UNSPLASH_API_URL", "https://proxy.example.com")

	_, err := LoadConfig("")
	require.Error(t, err)
}
