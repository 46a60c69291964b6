package unsplash

import (
	khttp "github.com/kochabx/unsplash/core/net/http"
)

// OrderBy sorts photo listings
type OrderBy string

const (
	OrderLatest    OrderBy = "latest"
	OrderOldest    OrderBy = "oldest"
	OrderPopular   OrderBy = "popular"
	OrderViews     OrderBy = "views"
	OrderDownloads OrderBy = "downloads"
)

// TopicOrderBy sorts topic listings
type TopicOrderBy string

const (
	TopicOrderLatest   TopicOrderBy = "latest"
	TopicOrderOldest   TopicOrderBy = "oldest"
	TopicOrderPosition TopicOrderBy = "position"
	TopicOrderFeatured TopicOrderBy = "featured"
)

// SearchOrderBy sorts photo search results
type SearchOrderBy string

const (
	SearchOrderRelevant  SearchOrderBy = "relevant"
	SearchOrderLatest    SearchOrderBy = "latest"
	SearchOrderEditorial SearchOrderBy = "editorial"
)

// Orientation filters photos by aspect
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Squarish  Orientation = "squarish"
)

// ContentFilter limits results by content safety, the API defaults to low
type ContentFilter string

const (
	ContentFilterLow  ContentFilter = "low"
	ContentFilterHigh ContentFilter = "high"
)

// Color filters search results
type Color string

const (
	ColorWhite         Color = "white"
	ColorBlack         Color = "black"
	ColorYellow        Color = "yellow"
	ColorOrange        Color = "orange"
	ColorRed           Color = "red"
	ColorPurple        Color = "purple"
	ColorMagenta       Color = "magenta"
	ColorGreen         Color = "green"
	ColorTeal          Color = "teal"
	ColorBlue          Color = "blue"
	ColorBlackAndWhite Color = "black_and_white"
)

// PaginationParams selects a page. Zero fields are left to the API defaults
// (page 1, 10 per page).
type PaginationParams struct {
	Page    int
	PerPage int `validate:"omitempty,lte=30"`
}

func (p PaginationParams) query(q khttp.Query) khttp.Query {
	return q.Add("page", defined(p.Page)).Add("per_page", defined(p.PerPage))
}

// StatsParams selects the historical window of a statistics call
type StatsParams struct {
	// Resolution is "days", the only value the API accepts
	Resolution string `validate:"omitempty,oneof=days"`
	// Quantity is the number of days, 1 to 30, default 30
	Quantity int `validate:"omitempty,gte=1,lte=30"`
}

func (p StatsParams) query(q khttp.Query) khttp.Query {
	return q.Add("resolution", defined(p.Resolution)).Add("quantity", defined(p.Quantity))
}

// defined maps a zero value to nil so the query drops it
func defined[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}

// Bool returns a pointer to b, for tri-state filters
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for optional body fields
func String(s string) *string {
	return &s
}
