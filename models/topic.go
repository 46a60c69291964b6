package models

type VeryBasicTopic struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Visibility string `json:"visibility"`
}

type TopicLinks struct {
	Self   string `json:"self"`
	HTML   string `json:"html"`
	Photos string `json:"photos"`
}

// Topic is returned by the topic listing
type Topic struct {
	VeryBasicTopic
	CoverPhoto               *Photo           `json:"cover_photo"`
	CurrentUserContributions []VeryBasicPhoto `json:"current_user_contributions"`
	Description              *string          `json:"description"`
	StartsAt                 string           `json:"starts_at"`
	EndsAt                   *string          `json:"ends_at"`
	Featured                 bool             `json:"featured"`
	Links                    TopicLinks       `json:"links"`
	Owners                   []BasicUser      `json:"owners"`
	PreviewPhotos            []VeryBasicPhoto `json:"preview_photos"`
	PublishedAt              string           `json:"published_at"`
	Status                   string           `json:"status"`
	TotalPhotos              int              `json:"total_photos"`
	UpdatedAt                string           `json:"updated_at"`
}

// FullTopic adds top contributors to Topic
type FullTopic struct {
	Topic
	TopContributors []BasicUser `json:"top_contributors"`
}
