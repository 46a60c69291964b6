package unsplash

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const topicsPath = "/topics"

// TopicsService covers the /topics endpoints
type TopicsService service

// TopicListParams filters the topic listing. IDs accepts ids or slugs.
type TopicListParams struct {
	PaginationParams
	IDs     []string
	OrderBy TopicOrderBy `validate:"omitempty,oneof=latest oldest position featured"`
}

// TopicPhotosParams filters the photos of a topic
type TopicPhotosParams struct {
	PaginationParams
	OrderBy     OrderBy
	Orientation Orientation
}

// List returns one page of topics
func (s *TopicsService) List(ctx context.Context, params TopicListParams, opts ...RequestOption) Result[[]models.Topic] {
	op := operation{"topics", "list", "Failed to fetch topics."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.Topic](op, err)
	}
	return call[[]models.Topic](ctx, s.client, op, khttp.CallOptions{
		Endpoint: topicsPath,
		Query: params.PaginationParams.query(nil).
			Add("order_by", defined(string(params.OrderBy))).
			Join("ids", params.IDs),
		Options: callOptions(nil, opts),
	})
}

// Get returns a topic by id or slug
func (s *TopicsService) Get(ctx context.Context, idOrSlug string, opts ...RequestOption) Result[models.FullTopic] {
	return call[models.FullTopic](ctx, s.client, operation{"topics", "get", "Failed to fetch topic."}, khttp.CallOptions{
		Endpoint: topicsPath + "/" + url.PathEscape(idOrSlug),
		Options:  callOptions(nil, opts),
	})
}

// Photos lists the photos of a topic
func (s *TopicsService) Photos(ctx context.Context, idOrSlug string, params TopicPhotosParams, opts ...RequestOption) Result[[]models.Photo] {
	op := operation{"topics", "photos", "Failed to fetch topic photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.Photo](op, err)
	}
	return call[[]models.Photo](ctx, s.client, op, khttp.CallOptions{
		Endpoint: topicsPath + "/" + url.PathEscape(idOrSlug) + "/photos",
		Query: params.PaginationParams.query(nil).
			Add("order_by", defined(string(params.OrderBy))).
			Add("orientation", defined(string(params.Orientation))),
		Options: callOptions(nil, opts),
	})
}
