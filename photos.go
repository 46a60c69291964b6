package unsplash

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const photosPath = "/photos"

// PhotosService covers the /photos endpoints
type PhotosService service

// RandomParams filters the random photo selection
type RandomParams struct {
	Collections   []string
	Topics        []string
	Username      string
	Query         string
	ContentFilter ContentFilter
	Orientation   Orientation
	Featured      *bool
	// Count is used by RandomList only, 1 to 30
	Count int `validate:"omitempty,gte=1,lte=30"`
}

func (p RandomParams) query() khttp.Query {
	var q khttp.Query
	return q.
		Add("username", defined(p.Username)).
		Add("query", defined(p.Query)).
		Add("content_filter", defined(string(p.ContentFilter))).
		Add("orientation", defined(string(p.Orientation))).
		Add("featured", p.Featured).
		Join("collections", p.Collections).
		Join("topics", p.Topics)
}

// PhotoTagInput is a tag to set on a photo
type PhotoTagInput struct {
	Title string `json:"title"`
}

type PhotoLocationInput struct {
	// Latitude and Longitude are rounded to 6 decimals
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
	Name      string `json:"name,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

type PhotoExifInput struct {
	Make            string `json:"make,omitempty"`
	Model           string `json:"model,omitempty"`
	ExposureTime    string `json:"exposure_time,omitempty"`
	ApertureValue   string `json:"aperture_value,omitempty"`
	FocalLength     string `json:"focal_length,omitempty"`
	ISOSpeedRatings string `json:"iso_speed_ratings,omitempty"`
}

// UpdatePhotoParams is the body of Update; nil fields are left unchanged
type UpdatePhotoParams struct {
	Description   *string             `json:"description,omitempty"`
	ShowOnProfile *bool               `json:"show_on_profile,omitempty"`
	Tags          []PhotoTagInput     `json:"tags,omitempty"`
	Location      *PhotoLocationInput `json:"location,omitempty"`
	Exif          *PhotoExifInput     `json:"exif,omitempty"`
}

func photoPath(id string, suffix ...string) string {
	p := photosPath + "/" + url.PathEscape(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// List returns one page of the editorial feed
func (s *PhotosService) List(ctx context.Context, params PaginationParams, opts ...RequestOption) Result[[]models.Photo] {
	op := operation{"photos", "list", "Failed to fetch photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.Photo](op, err)
	}
	return call[[]models.Photo](ctx, s.client, op, khttp.CallOptions{
		Endpoint: photosPath,
		Query:    params.query(nil),
		Options:  callOptions(nil, opts),
	})
}

// Get returns a single photo
func (s *PhotosService) Get(ctx context.Context, id string, opts ...RequestOption) Result[models.FullPhoto] {
	return call[models.FullPhoto](ctx, s.client, operation{"photos", "get", "Failed to fetch photo."}, khttp.CallOptions{
		Endpoint: photoPath(id),
		Options:  callOptions(nil, opts),
	})
}

// randomDefaults disable response caching, a caller header still wins
func randomDefaults() []RequestOption {
	return []RequestOption{khttp.WithHeader(map[string]string{khttp.HeaderCacheControl: "no-cache"})}
}

// Random returns one random photo. params.Count is ignored.
func (s *PhotosService) Random(ctx context.Context, params RandomParams, opts ...RequestOption) Result[models.FullPhoto] {
	return call[models.FullPhoto](ctx, s.client, operation{"photos", "random", "Failed to fetch random photo."}, khttp.CallOptions{
		Endpoint: photosPath + "/random",
		Query:    params.query(),
		Options:  callOptions(randomDefaults(), opts),
	})
}

// RandomList returns params.Count random photos, 1 when Count is zero
func (s *PhotosService) RandomList(ctx context.Context, params RandomParams, opts ...RequestOption) Result[[]models.RandomPhoto] {
	op := operation{"photos", "random_list", "Failed to fetch random photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.RandomPhoto](op, err)
	}
	count := params.Count
	if count == 0 {
		count = 1
	}
	return call[[]models.RandomPhoto](ctx, s.client, op, khttp.CallOptions{
		Endpoint: photosPath + "/random",
		Query:    params.query().Add("count", count),
		Options:  callOptions(randomDefaults(), opts),
	})
}

// Statistics returns the views and downloads of a photo over a window of days
func (s *PhotosService) Statistics(ctx context.Context, id string, params StatsParams, opts ...RequestOption) Result[models.PhotoStats] {
	op := operation{"photos", "statistics", "Failed to fetch photo."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.PhotoStats](op, err)
	}
	return call[models.PhotoStats](ctx, s.client, op, khttp.CallOptions{
		Endpoint: photoPath(id, "statistics"),
		Query:    params.query(nil),
		Options:  callOptions(nil, opts),
	})
}

// TrackDownload increments the download count of a photo. Call it whenever
// the application downloads the photo.
func (s *PhotosService) TrackDownload(ctx context.Context, id string, opts ...RequestOption) Result[models.DownloadLink] {
	return call[models.DownloadLink](ctx, s.client, operation{"photos", "track_download", "Failed to track download."}, khttp.CallOptions{
		Endpoint: photoPath(id, "download"),
		Options:  callOptions(nil, opts),
	})
}

// Update edits a photo on behalf of the user, requires the write_photos scope
func (s *PhotosService) Update(ctx context.Context, id string, params UpdatePhotoParams, opts ...RequestOption) Result[models.Photo] {
	op := operation{"photos", "update", "Failed to update photo."}
	body, err := encode(params)
	if err != nil {
		return reject[models.Photo](op, err)
	}
	return call[models.Photo](ctx, s.client, op, khttp.CallOptions{
		Endpoint: photoPath(id),
		Method:   khttp.MethodPut,
		Body:     body,
		Options:  callOptions(nil, opts),
	})
}

// Like likes a photo on behalf of the user, requires the write_likes scope
func (s *PhotosService) Like(ctx context.Context, id string, opts ...RequestOption) Result[models.LikeResponse] {
	return call[models.LikeResponse](ctx, s.client, operation{"photos", "like", "Failed to like photo."}, khttp.CallOptions{
		Endpoint: photoPath(id, "like"),
		Method:   khttp.MethodPost,
		Options:  callOptions(nil, opts),
	})
}

// Unlike removes the user's like, requires the write_likes scope
func (s *PhotosService) Unlike(ctx context.Context, id string, opts ...RequestOption) Result[models.LikeResponse] {
	return call[models.LikeResponse](ctx, s.client, operation{"photos", "unlike", "Failed to unlike photo."}, khttp.CallOptions{
		Endpoint: photoPath(id, "like"),
		Method:   khttp.MethodDelete,
		Options:  callOptions(nil, opts),
	})
}
