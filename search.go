package unsplash

import (
	"context"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const searchPath = "/search"

// SearchService covers the /search endpoints
type SearchService service

// SearchParams is a search term and a page
type SearchParams struct {
	PaginationParams
	Query string `validate:"required"`
}

func (p SearchParams) query() khttp.Query {
	var q khttp.Query
	return p.PaginationParams.query(q.Add("query", p.Query))
}

// SearchPhotosParams narrows a photo search
type SearchPhotosParams struct {
	SearchParams
	OrderBy       SearchOrderBy
	Color         Color
	Orientation   Orientation
	ContentFilter ContentFilter
	// Lang is an ISO 639-1 code, the API defaults to en
	Lang        string
	Collections []string
}

// Photos searches photos
func (s *SearchService) Photos(ctx context.Context, params SearchPhotosParams, opts ...RequestOption) Result[models.PhotoSearch] {
	op := operation{"search", "photos", "Failed to fetch search photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.PhotoSearch](op, err)
	}
	return call[models.PhotoSearch](ctx, s.client, op, khttp.CallOptions{
		Endpoint: searchPath + "/photos",
		Query: params.SearchParams.query().
			Add("order_by", defined(string(params.OrderBy))).
			Add("color", defined(string(params.Color))).
			Add("orientation", defined(string(params.Orientation))).
			Add("content_filter", defined(string(params.ContentFilter))).
			Add("lang", defined(params.Lang)).
			Join("collections", params.Collections),
		Options: callOptions(nil, opts),
	})
}

// Collections searches collections
func (s *SearchService) Collections(ctx context.Context, params SearchParams, opts ...RequestOption) Result[models.CollectionSearch] {
	op := operation{"search", "collections", "Failed to fetch search collections."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.CollectionSearch](op, err)
	}
	return call[models.CollectionSearch](ctx, s.client, op, khttp.CallOptions{
		Endpoint: searchPath + "/collections",
		Query:    params.query(),
		Options:  callOptions(nil, opts),
	})
}

// Users searches users
func (s *SearchService) Users(ctx context.Context, params SearchParams, opts ...RequestOption) Result[models.UserSearch] {
	op := operation{"search", "users", "Failed to fetch search users."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.UserSearch](op, err)
	}
	return call[models.UserSearch](ctx, s.client, op, khttp.CallOptions{
		Endpoint: searchPath + "/users",
		Query:    params.query(),
		Options:  callOptions(nil, opts),
	})
}
