package models

// PhotoURLs are the rendered sizes of a photo
type PhotoURLs struct {
	Full    string `json:"full"`
	Raw     string `json:"raw"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
	SmallS3 string `json:"small_s3"`
}

type PhotoLinks struct {
	Self             string `json:"self"`
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location"`
}

// VeryBasicPhoto is the shape embedded in previews and user profiles
type VeryBasicPhoto struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	URLs      PhotoURLs `json:"urls"`
}

type Breadcrumb struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Index int    `json:"index"`
	Type  string `json:"type"`
}

type Sponsorship struct {
	ImpressionURLs []string   `json:"impression_urls"`
	Tagline        string     `json:"tagline"`
	TaglineURL     string     `json:"tagline_url"`
	Sponsor        *BasicUser `json:"sponsor"`
}

// TopicSubmission is the review state of a photo submitted to a topic
type TopicSubmission struct {
	Status     string  `json:"status"`
	ApprovedOn *string `json:"approved_on"`
}

// Photo is the basic photo returned by list endpoints
type Photo struct {
	VeryBasicPhoto
	AlternativeSlugs       map[string]string          `json:"alternative_slugs"`
	AltDescription         *string                    `json:"alt_description"`
	BlurHash               *string                    `json:"blur_hash"`
	Breadcrumbs            []Breadcrumb               `json:"breadcrumbs"`
	Color                  *string                    `json:"color"`
	Description            *string                    `json:"description"`
	Width                  int                        `json:"width"`
	Height                 int                        `json:"height"`
	Likes                  int                        `json:"likes"`
	Views                  int                        `json:"views"`
	Downloads              int                        `json:"downloads"`
	Links                  PhotoLinks                 `json:"links"`
	PromotedAt             *string                    `json:"promoted_at"`
	User                   BasicUser                  `json:"user"`
	Sponsorship            *Sponsorship               `json:"sponsorship"`
	TopicSubmissions       map[string]TopicSubmission `json:"topic_submissions"`
	AssetType              string                     `json:"asset_type"`
	LikedByUser            bool                       `json:"liked_by_user"`
	CurrentUserCollections []VeryBasicCollection      `json:"current_user_collections"`
}

type Exif struct {
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Name         *string `json:"name"`
	ExposureTime *string `json:"exposure_time"`
	Aperture     *string `json:"aperture"`
	FocalLength  *string `json:"focal_length"`
	ISO          *int    `json:"iso"`
}

type Position struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Location struct {
	City    *string `json:"city"`
	Country *string `json:"country"`
	// Name is the full location including city and country when known
	Name     *string  `json:"name"`
	Position Position `json:"position"`
}

// RandomPhoto is one element of a multi-photo random response
type RandomPhoto struct {
	Photo
	Exif     Exif     `json:"exif"`
	Location Location `json:"location"`
}

type PhotoTag struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Source any    `json:"source,omitempty"`
}

type RelatedCollections struct {
	Total   int               `json:"total"`
	Type    string            `json:"type"`
	Results []BasicCollection `json:"results"`
}

// FullPhoto is a single photo with exif, location and relations
type FullPhoto struct {
	RandomPhoto
	Meta struct {
		Index bool `json:"index"`
	} `json:"meta"`
	PublicDomain       bool               `json:"public_domain"`
	Tags               []PhotoTag         `json:"tags"`
	Topics             []VeryBasicTopic   `json:"topics"`
	RelatedCollections RelatedCollections `json:"related_collections"`
}

type StatValue struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type Historical struct {
	Change     int         `json:"change"`
	Average    int         `json:"average,omitempty"`
	Resolution string      `json:"resolution"`
	Quantity   int         `json:"quantity"`
	Values     []StatValue `json:"values"`
}

type Stat struct {
	Total      int        `json:"total"`
	Historical Historical `json:"historical"`
}

// PhotoStats are the views and downloads of one photo
type PhotoStats struct {
	ID        string `json:"id"`
	Views     Stat   `json:"views"`
	Downloads Stat   `json:"downloads"`
}

// DownloadLink is returned when a download is tracked
type DownloadLink struct {
	URL string `json:"url"`
}

// LikeResponse is returned by like and unlike
type LikeResponse struct {
	Photo Photo     `json:"photo"`
	User  BasicUser `json:"user"`
}
