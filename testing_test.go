package unsplash

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/unsplash/log"
)

const accessKey = "My-Access-Key"

type captured struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Host   string
	Body   string
}

// fakeAPI answers every request with the configured status and payload and
// records what it received
type fakeAPI struct {
	mu       sync.Mutex
	status   int
	payload  string
	requests []captured
}

func (f *fakeAPI) respond(status int, payload string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.payload = status, payload
}

func (f *fakeAPI) last(t *testing.T) captured {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the server")
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) handle(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)

	f.mu.Lock()
	f.requests = append(f.requests, captured{
		Method: c.Request.Method,
		Path:   c.Request.URL.EscapedPath(),
		Query:  c.Request.URL.RawQuery,
		Header: c.Request.Header.Clone(),
		Host:   c.Request.Host,
		Body:   string(body),
	})
	status, payload := f.status, f.payload
	f.mu.Unlock()

	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.Data(status, "application/json", []byte(payload))
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &fakeAPI{status: http.StatusOK, payload: "{}"}
	engine := gin.New()
	engine.Any("/*path", api.handle)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return api, server
}

// rewriteTransport sends requests meant for the real API to a test server
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

// newTestClient returns a client configured with an access key whose traffic
// lands on a fake API
func newTestClient(t *testing.T, cfg Config, opts ...Option) (*Client, *fakeAPI) {
	t.Helper()
	api, server := newFakeAPI(t)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	opts = append([]Option{
		WithHTTPClient(&http.Client{Transport: rewriteTransport{target: target}}),
		WithLogger(log.Nop()),
	}, opts...)

	client, err := New(cfg, opts...)
	require.NoError(t, err)
	return client, api
}
