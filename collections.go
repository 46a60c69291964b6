package unsplash

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const collectionsPath = "/collections"

// CollectionsService covers the /collections endpoints
type CollectionsService service

// CollectionPhotosParams filters the photos of a collection
type CollectionPhotosParams struct {
	PaginationParams
	Orientation Orientation
}

// CollectionParams is the body of Create and Update. Title is required on Create.
type CollectionParams struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Private     *bool  `json:"private,omitempty"`
}

func collectionPath(id string, suffix string) string {
	p := collectionsPath + "/" + url.PathEscape(id)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// List returns one page of featured collections
func (s *CollectionsService) List(ctx context.Context, params PaginationParams, opts ...RequestOption) Result[[]models.BasicCollection] {
	op := operation{"collections", "list", "Failed to fetch collections."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.BasicCollection](op, err)
	}
	return call[[]models.BasicCollection](ctx, s.client, op, khttp.CallOptions{
		Endpoint: collectionsPath,
		Query:    params.query(nil),
		Options:  callOptions(nil, opts),
	})
}

// Get returns a single collection
func (s *CollectionsService) Get(ctx context.Context, id string, opts ...RequestOption) Result[models.BasicCollection] {
	return call[models.BasicCollection](ctx, s.client, operation{"collections", "get", "Failed to fetch collection."}, khttp.CallOptions{
		Endpoint: collectionPath(id, ""),
		Options:  callOptions(nil, opts),
	})
}

// Photos lists the photos of a collection
func (s *CollectionsService) Photos(ctx context.Context, id string, params CollectionPhotosParams, opts ...RequestOption) Result[[]models.FullPhoto] {
	op := operation{"collections", "photos", "Failed to fetch collection photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.FullPhoto](op, err)
	}
	return call[[]models.FullPhoto](ctx, s.client, op, khttp.CallOptions{
		Endpoint: collectionPath(id, "photos"),
		Query:    params.PaginationParams.query(nil).Add("orientation", defined(string(params.Orientation))),
		Options:  callOptions(nil, opts),
	})
}

// Related lists collections related to a collection
func (s *CollectionsService) Related(ctx context.Context, id string, opts ...RequestOption) Result[[]models.BasicCollection] {
	return call[[]models.BasicCollection](ctx, s.client, operation{"collections", "related", "Failed to fetch collection related."}, khttp.CallOptions{
		Endpoint: collectionPath(id, "related"),
		Options:  callOptions(nil, opts),
	})
}

// Create creates a collection, requires the write_collections scope
func (s *CollectionsService) Create(ctx context.Context, params CollectionParams, opts ...RequestOption) Result[models.BasicCollection] {
	op := operation{"collections", "create", "Failed to create collection."}
	if err := validator.Validate.GetValidator().Var(params.Title, "required"); err != nil {
		return reject[models.BasicCollection](op, err)
	}
	return s.write(ctx, op, khttp.MethodPost, collectionsPath, params, opts)
}

// Update edits a collection, requires the write_collections scope
func (s *CollectionsService) Update(ctx context.Context, id string, params CollectionParams, opts ...RequestOption) Result[models.BasicCollection] {
	return s.write(ctx, operation{"collections", "update", "Failed to update collection."}, khttp.MethodPut, collectionPath(id, ""), params, opts)
}

func (s *CollectionsService) write(ctx context.Context, op operation, method, endpoint string, params CollectionParams, opts []RequestOption) Result[models.BasicCollection] {
	body, err := encode(params)
	if err != nil {
		return reject[models.BasicCollection](op, err)
	}
	return call[models.BasicCollection](ctx, s.client, op, khttp.CallOptions{
		Endpoint: endpoint,
		Method:   method,
		Body:     body,
		Options:  callOptions(nil, opts),
	})
}

// Delete removes a collection, requires the write_collections scope. The API
// answers 204 so a successful Result holds no data.
func (s *CollectionsService) Delete(ctx context.Context, id string, opts ...RequestOption) Result[struct{}] {
	return call[struct{}](ctx, s.client, operation{"collections", "delete", "Failed to delete collection."}, khttp.CallOptions{
		Endpoint: collectionPath(id, ""),
		Method:   khttp.MethodDelete,
		Options:  callOptions(nil, opts),
	})
}

// AddPhoto adds a photo to a collection, requires the write_collections scope
func (s *CollectionsService) AddPhoto(ctx context.Context, id, photoID string, opts ...RequestOption) Result[models.CollectionPhoto] {
	return s.photo(ctx, operation{"collections", "add_photo", "Failed to add photo to collection."}, khttp.MethodPost, collectionPath(id, "add"), photoID, opts)
}

// RemovePhoto removes a photo from a collection, requires the write_collections scope
func (s *CollectionsService) RemovePhoto(ctx context.Context, id, photoID string, opts ...RequestOption) Result[models.CollectionPhoto] {
	return s.photo(ctx, operation{"collections", "remove_photo", "Failed to remove photo from collection."}, khttp.MethodDelete, collectionPath(id, "remove"), photoID, opts)
}

func (s *CollectionsService) photo(ctx context.Context, op operation, method, endpoint, photoID string, opts []RequestOption) Result[models.CollectionPhoto] {
	body, err := encode(map[string]any{"photo_id": photoID})
	if err != nil {
		return reject[models.CollectionPhoto](op, err)
	}
	return call[models.CollectionPhoto](ctx, s.client, op, khttp.CallOptions{
		Endpoint: endpoint,
		Method:   method,
		Body:     body,
		Options:  callOptions(nil, opts),
	})
}
