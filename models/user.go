package models

type UserLinks struct {
	Self      string `json:"self"`
	HTML      string `json:"html"`
	Photos    string `json:"photos"`
	Likes     string `json:"likes"`
	Portfolio string `json:"portfolio"`
	Followers string `json:"followers"`
	Following string `json:"following"`
}

type Social struct {
	InstagramUsername *string `json:"instagram_username"`
	TwitterUsername   *string `json:"twitter_username"`
	PortfolioURL      *string `json:"portfolio_url"`
	PaypalEmail       *string `json:"paypal_email"`
}

type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// BasicUser is the user shape embedded in photos and collections
type BasicUser struct {
	ID                         string       `json:"id"`
	Username                   string       `json:"username"`
	Name                       string       `json:"name"`
	FirstName                  string       `json:"first_name"`
	LastName                   *string      `json:"last_name"`
	Bio                        *string      `json:"bio"`
	Location                   *string      `json:"location"`
	PortfolioURL               *string      `json:"portfolio_url"`
	InstagramUsername          *string      `json:"instagram_username"`
	TwitterUsername            *string      `json:"twitter_username"`
	AcceptedTOS                bool         `json:"accepted_tos"`
	ForHire                    bool         `json:"for_hire"`
	FollowedByUser             bool         `json:"followed_by_user"`
	Downloads                  int          `json:"downloads"`
	TotalCollections           int          `json:"total_collections"`
	TotalLikes                 int          `json:"total_likes"`
	TotalPhotos                int          `json:"total_photos"`
	TotalPromotedPhotos        int          `json:"total_promoted_photos"`
	TotalIllustrations         int          `json:"total_illustrations"`
	TotalPromotedIllustrations int          `json:"total_promoted_illustrations"`
	UpdatedAt                  string       `json:"updated_at"`
	Links                      UserLinks    `json:"links"`
	Social                     Social       `json:"social"`
	ProfileImage               ProfileImage `json:"profile_image"`
}

// CurrentUser is the authenticated user, requires the read_user scope
type CurrentUser struct {
	BasicUser
	Email            string `json:"email"`
	UploadsRemaining int    `json:"uploads_remaining"`
}

// MediumUser is the user shape returned by user search
type MediumUser struct {
	BasicUser
	Photos []VeryBasicPhoto `json:"photos"`
}

type Badge struct {
	Title   string `json:"title"`
	Primary bool   `json:"primary"`
	Slug    string `json:"slug"`
	Link    string `json:"link"`
}

// FullUser is a public profile
type FullUser struct {
	MediumUser
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	Badge          *Badge `json:"badge"`
	AllowMessages  bool   `json:"allow_messages"`
	NumericID      string `json:"numeric_id"`
}

// PortfolioLink is a user's external portfolio
type PortfolioLink struct {
	URL string `json:"url"`
}

// UserStats are the consolidated views and downloads of a user's photos
type UserStats struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Views     Stat   `json:"views"`
	Downloads Stat   `json:"downloads"`
}
