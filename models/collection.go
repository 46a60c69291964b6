package models

type VeryBasicCollection struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	PublishedAt     string     `json:"published_at"`
	LastCollectedAt string     `json:"last_collected_at"`
	UpdatedAt       string     `json:"updated_at"`
	User            *BasicUser `json:"user"`
	CoverPhoto      *Photo     `json:"cover_photo"`
	ShareKey        *string    `json:"share_key"`
}

type CollectionLinks struct {
	Self     string `json:"self"`
	HTML     string `json:"html"`
	Photos   string `json:"photos"`
	Download string `json:"download,omitempty"`
	Related  string `json:"related,omitempty"`
}

type CollectionTag struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// BasicCollection is what every collection endpoint returns
type BasicCollection struct {
	VeryBasicCollection
	Description   *string          `json:"description"`
	Featured      bool             `json:"featured"`
	Private       bool             `json:"private"`
	Links         CollectionLinks  `json:"links"`
	PreviewPhotos []VeryBasicPhoto `json:"preview_photos"`
	TotalPhotos   int              `json:"total_photos"`
	Tags          []CollectionTag  `json:"tags"`
}

// CollectionPhoto is returned when a photo is added to or removed from a collection
type CollectionPhoto struct {
	Photo      FullPhoto       `json:"photo"`
	Collection BasicCollection `json:"collection"`
}
