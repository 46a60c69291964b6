package unsplash

import (
	"context"
	"strings"

	khttp "github.com/kochabx/unsplash/core/net/http"
	"github.com/kochabx/unsplash/core/validator"
	"github.com/kochabx/unsplash/models"
)

const (
	// OAuthAuthorizeURL is where users grant the application access
	OAuthAuthorizeURL = "https://unsplash.com/oauth/authorize"
	oauthTokenPath    = "/oauth/token"
)

// AuthService covers the OAuth authorization code flow
type AuthService service

// AuthorizationParams describe the authorization page the user is sent to
type AuthorizationParams struct {
	RedirectURI string `validate:"required"`
	// ResponseType defaults to "code", the only type the API supports
	ResponseType string
	// Scopes default to public
	Scopes []models.Scope
}

// OAuthParams exchange an authorization code for a bearer token
type OAuthParams struct {
	ClientSecret string `validate:"required"`
	RedirectURI  string `validate:"required"`
	Code         string `validate:"required"`
	// GrantType defaults to "authorization_code"
	GrantType string
}

// AuthenticationURL returns the authorization page for the configured access
// key. It reports false when the client has no access key. No request is made.
func (s *AuthService) AuthenticationURL(params AuthorizationParams) (string, bool) {
	key := s.client.base.AccessKey
	if key == "" {
		return "", false
	}

	responseType := params.ResponseType
	if responseType == "" {
		responseType = "code"
	}

	scopes := make([]string, 0, len(params.Scopes))
	for _, sc := range params.Scopes {
		scopes = append(scopes, string(sc))
	}
	if len(scopes) == 0 {
		scopes = append(scopes, string(models.ScopePublic))
	}

	u := khttp.MustFromURL(OAuthAuthorizeURL).
		Query("client_id", key).
		Query("redirect_uri", params.RedirectURI).
		Query("response_type", responseType).
		Query("scope", strings.Join(scopes, " "))
	return u.String(), true
}

// UserAuthentication exchanges an authorization code for a bearer token. The
// client_id is the configured access key and is omitted when there is none.
func (s *AuthService) UserAuthentication(ctx context.Context, params OAuthParams, opts ...RequestOption) Result[models.AuthorizationResponse] {
	op := operation{"auth", "user_authentication", "Failed to authorize."}
	if err := validator.Validate.Struct(&params); err != nil {
		return reject[models.AuthorizationResponse](op, err)
	}

	grantType := params.GrantType
	if grantType == "" {
		grantType = "authorization_code"
	}

	var clientID any = khttp.Undefined
	if key := s.client.base.AccessKey; key != "" {
		clientID = key
	}

	body, err := encode(map[string]any{
		"client_id":     clientID,
		"grant_type":    grantType,
		"client_secret": params.ClientSecret,
		"redirect_uri":  params.RedirectURI,
		"code":          params.Code,
	})
	if err != nil {
		return reject[models.AuthorizationResponse](op, err)
	}

	return call[models.AuthorizationResponse](ctx, s.client, op, khttp.CallOptions{
		Endpoint: oauthTokenPath,
		Method:   khttp.MethodPost,
		Body:     body,
		Options:  callOptions(nil, opts),
	})
}
