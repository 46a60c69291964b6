package http

// Common Content-Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeText = "text/plain"
)

// Header names set by the request builder
const (
	HeaderAcceptVersion = "Accept-Version"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
)

// Defaults applied when the client configuration leaves them empty
const (
	DefaultAPIURL     = "https://api.unsplash.com"
	DefaultAPIVersion = "v1"
	DefaultMethod     = MethodGet

	authorizationScheme = "Client-ID "
)

// HTTP methods used by the API
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)
