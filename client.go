package unsplash

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/tag"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/errors"
	"github.com/kochabx/unsplash/log"
	"github.com/kochabx/unsplash/log/desensitize"
	"github.com/kochabx/unsplash/metrics"
)

// Client talks to the Unsplash API. It holds no mutable state after New and is
// safe for concurrent use.
type Client struct {
	base    khttp.BaseConfig
	doer    khttp.Doer
	logger  *log.Logger
	metrics *metrics.Collector

	common service

	Photos      *PhotosService
	Users       *UsersService
	Collections *CollectionsService
	Topics      *TopicsService
	Search      *SearchService
	Stats       *StatsService
	Auth        *AuthService
}

type service struct {
	client *Client
}

// New validates cfg and creates a Client
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := tag.ApplyDefaults(&cfg); err != nil {
		return nil, errors.Wrap(err, http.StatusBadRequest, "invalid client config")
	}
	if err := validator.Validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, http.StatusBadRequest, "invalid client config")
	}
	if cfg.APIURL != "" {
		if _, err := khttp.FromURL(cfg.APIURL); err != nil {
			return nil, errors.Wrap(err, http.StatusBadRequest, "invalid client config")
		}
	}

	requestOptions := khttp.NewRequestOptions(
		append([]RequestOption{khttp.WithHeader(cfg.Headers), khttp.WithHost(cfg.Host)}, cfg.RequestOptions...)...,
	)

	c := &Client{
		base: khttp.BaseConfig{
			AccessKey:      cfg.AccessKey,
			APIURL:         cfg.APIURL,
			APIVersion:     cfg.APIVersion,
			RequestOptions: requestOptions,
		},
		doer:   khttp.New(),
		logger: log.G,
	}
	if cfg.Timeout > 0 {
		c.doer = khttp.New(khttp.WithClient(&http.Client{Timeout: cfg.Timeout}))
	}
	for _, opt := range opts {
		opt(c)
	}

	c.common.client = c
	c.Photos = (*PhotosService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Collections = (*CollectionsService)(&c.common)
	c.Topics = (*TopicsService)(&c.common)
	c.Search = (*SearchService)(&c.common)
	c.Stats = (*StatsService)(&c.common)
	c.Auth = (*AuthService)(&c.common)

	return c, nil
}

// operation names one API method for logs and metrics
type operation struct {
	resource string
	name     string
	message  string
}

// call performs one exchange and normalizes it
func call[T any](ctx context.Context, c *Client, op operation, opts khttp.CallOptions) Result[T] {
	start := time.Now()

	req, err := khttp.Build(c.base, opts)
	if err != nil {
		return khttp.Failure[T](errors.ValidationFailure(op.message, err))
	}

	id := uuid.NewString()
	c.logger.Debug().
		Str("request_id", id).
		Str("resource", op.resource).
		Str("operation", op.name).
		Str("method", req.Method).
		Stringer("url", req.URL).
		Any("header", loggedHeader(req.Header)).
		Msg("unsplash request")

	resp, err := c.doer.Do(ctx, req)
	status := 0
	if err == nil && resp != nil {
		status = resp.StatusCode
	}

	res := khttp.Parse[T](resp, err, op.message)
	elapsed := time.Since(start)

	c.metrics.Observe(metrics.Observation{
		Resource:  op.resource,
		Operation: op.name,
		Method:    req.Method,
		Status:    status,
		Failure:   failureKind(res.Error),
		Elapsed:   elapsed,
	})

	event := c.logger.Debug().
		Str("request_id", id).
		Int("status", status).
		Dur("elapsed", elapsed)
	if res.Error != nil {
		event = event.Err(res.Error).Str("error_name", res.Error.Name)
	}
	event.Msg("unsplash response")

	return res
}

// loggedHeader copies h with the Authorization credential masked, so request
// lines never carry the key whatever writer the logger has
func loggedHeader(h http.Header) http.Header {
	if h.Get(khttp.HeaderAuthorization) == "" {
		return h
	}
	out := h.Clone()
	out.Set(khttp.HeaderAuthorization, desensitize.MaskAuthorization(h.Get(khttp.HeaderAuthorization)))
	return out
}

// reject fails a call before any request is sent
func reject[T any](op operation, err error) Result[T] {
	return khttp.Failure[T](errors.ValidationFailure(op.message, err))
}

func failureKind(err *errors.Error) string {
	switch {
	case err == nil:
		return ""
	case err.Name == errors.NameStatus:
		return metrics.KindStatus
	case err.Name == errors.NameDecode:
		return metrics.KindDecode
	default:
		return metrics.KindTransport
	}
}

// callOptions assembles per-call options with defaults applied first
func callOptions(defaults []RequestOption, opts []RequestOption) khttp.RequestOptions {
	return khttp.NewRequestOptions(append(defaults, opts...)...)
}

// encode serializes a body, returning a rejection when it cannot be encoded
func encode(body any) ([]byte, error) {
	b, err := khttp.EncodeBody(body)
	if err != nil {
		return nil, errors.Wrap(err, 0, "failed to encode request body")
	}
	return b, nil
}
