package http

import "errors"

// Sentinel errors used by the authentication middleware and URL parameter
// parsing. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNotAuthorized is the generic rejection for any authentication
	// failure past header parsing. Token verification failures and unknown
	// token subjects all collapse into it so the response does not reveal
	// which check failed.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAccessDenied is returned by the role gate when the authenticated
	// identity's role is not in the allowed set.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidUserID is returned when a {id} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded
	// into the operation's request struct.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)
