package models

// Scope is an OAuth permission
type Scope string

const (
	ScopePublic           Scope = "public"
	ScopeReadUser         Scope = "read_user"
	ScopeWriteUser        Scope = "write_user"
	ScopeReadPhotos       Scope = "read_photos"
	ScopeWritePhotos      Scope = "write_photos"
	ScopeWriteLikes       Scope = "write_likes"
	ScopeWriteFollowers   Scope = "write_followers"
	ScopeReadCollections  Scope = "read_collections"
	ScopeWriteCollections Scope = "write_collections"
)

// AuthorizationResponse is the bearer token issued for an authorization code
type AuthorizationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// Scope is space separated, as the token endpoint returns it
	Scope     string `json:"scope"`
	CreatedAt int64  `json:"created_at"`
}
