package unsplash

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const usersPath = "/users"

// UsersService covers /me and the /users endpoints
type UsersService service

// UpdateCurrentUserParams is the body of UpdateCurrent; empty fields are left unchanged
type UpdateCurrentUserParams struct {
	Username          string `json:"username,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	URL               string `json:"url,omitempty" validate:"omitempty,url"`
	Location          string `json:"location,omitempty"`
	Bio               string `json:"bio,omitempty"`
	InstagramUsername string `json:"instagram_username,omitempty"`
}

// UserLikesParams filters the photos a user liked
type UserLikesParams struct {
	PaginationParams
	OrderBy     OrderBy
	Orientation Orientation
}

func (p UserLikesParams) query() khttp.Query {
	return p.PaginationParams.query(nil).
		Add("order_by", defined(string(p.OrderBy))).
		Add("orientation", defined(string(p.Orientation)))
}

// UserPhotosParams filters the photos a user uploaded. Stats adds each photo's
// statistics over the window given by StatsParams.
type UserPhotosParams struct {
	UserLikesParams
	StatsParams
	Stats *bool
}

func (p UserPhotosParams) query() khttp.Query {
	return p.StatsParams.query(p.UserLikesParams.query().Add("stats", p.Stats))
}

func userPath(username string, suffix string) string {
	p := usersPath + "/" + url.PathEscape(username)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

// Current returns the authenticated user, requires the read_user scope
func (s *UsersService) Current(ctx context.Context, opts ...RequestOption) Result[models.CurrentUser] {
	return call[models.CurrentUser](ctx, s.client, operation{"users", "current", "Failed to fetch current user."}, khttp.CallOptions{
		Endpoint: "/me",
		Options:  callOptions(nil, opts),
	})
}

// UpdateCurrent edits the authenticated user, requires the write_user scope
func (s *UsersService) UpdateCurrent(ctx context.Context, params UpdateCurrentUserParams, opts ...RequestOption) Result[models.CurrentUser] {
	op := operation{"users", "update_current", "Failed to update current user."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.CurrentUser](op, err)
	}
	body, err := encode(params)
	if err != nil {
		return reject[models.CurrentUser](op, err)
	}
	return call[models.CurrentUser](ctx, s.client, op, khttp.CallOptions{
		Endpoint: "/me",
		Method:   khttp.MethodPut,
		Body:     body,
		Options:  callOptions(nil, opts),
	})
}

// Get returns a public profile
func (s *UsersService) Get(ctx context.Context, username string, opts ...RequestOption) Result[models.FullUser] {
	return call[models.FullUser](ctx, s.client, operation{"users", "get", "Failed to fetch user."}, khttp.CallOptions{
		Endpoint: userPath(username, ""),
		Options:  callOptions(nil, opts),
	})
}

// Portfolio returns the user's portfolio link
func (s *UsersService) Portfolio(ctx context.Context, username string, opts ...RequestOption) Result[models.PortfolioLink] {
	return call[models.PortfolioLink](ctx, s.client, operation{"users", "portfolio", "Failed to fetch user portfolio."}, khttp.CallOptions{
		Endpoint: userPath(username, "portfolio"),
		Options:  callOptions(nil, opts),
	})
}

// Photos lists the photos uploaded by a user
func (s *UsersService) Photos(ctx context.Context, username string, params UserPhotosParams, opts ...RequestOption) Result[[]models.FullPhoto] {
	op := operation{"users", "photos", "Failed to fetch user photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.FullPhoto](op, err)
	}
	return call[[]models.FullPhoto](ctx, s.client, op, khttp.CallOptions{
		Endpoint: userPath(username, "photos"),
		Query:    params.query(),
		Options:  callOptions(nil, opts),
	})
}

// LikedPhotos lists the photos a user liked
func (s *UsersService) LikedPhotos(ctx context.Context, username string, params UserLikesParams, opts ...RequestOption) Result[[]models.FullPhoto] {
	op := operation{"users", "liked_photos", "Failed to fetch user liked photos."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.FullPhoto](op, err)
	}
	return call[[]models.FullPhoto](ctx, s.client, op, khttp.CallOptions{
		Endpoint: userPath(username, "likes"),
		Query:    params.query(),
		Options:  callOptions(nil, opts),
	})
}

// Collections lists the collections a user created
func (s *UsersService) Collections(ctx context.Context, username string, params PaginationParams, opts ...RequestOption) Result[[]models.BasicCollection] {
	op := operation{"users", "collections", "Failed to fetch user collections."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[[]models.BasicCollection](op, err)
	}
	return call[[]models.BasicCollection](ctx, s.client, op, khttp.CallOptions{
		Endpoint: userPath(username, "collections"),
		Query:    params.query(nil),
		Options:  callOptions(nil, opts),
	})
}

// Statistics returns the consolidated views and downloads of a user's photos
func (s *UsersService) Statistics(ctx context.Context, username string, params StatsParams, opts ...RequestOption) Result[models.UserStats] {
	op := operation{"users", "statistics", "Failed to fetch user stats."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.UserStats](op, err)
	}
	return call[models.UserStats](ctx, s.client, op, khttp.CallOptions{
		Endpoint: userPath(username, "statistics"),
		Query:    params.query(nil),
		Options:  callOptions(nil, opts),
	})
}
