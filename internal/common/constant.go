// Package common contains shared constants and sentinel errors used across
// the admin client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// RequestIDHeaderName correlates client and backend log lines.
	RequestIDHeaderName = "X-Request-ID"

	BearerPrefix = "Bearer "
)

// Persisted session storage keys. Values are JSON encoded.
const (
	StorageKeyToken = "auth_token"
	StorageKeyUser  = "auth_user"
)

// Routes the client knows about. Only the login route is referenced from
// the transport layer.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteDenied    = "/unauthorized"
)
