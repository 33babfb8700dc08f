package service

import "errors"

// Validation failures produced locally by the services. The messages are
// surfaced verbatim in the `{message}` error body, so they are phrased for
// the API client.
var (
	ErrAllFieldsRequired      = errors.New("all fields are required")
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
	ErrEmailPasswordRequired  = errors.New("email and password required")
	ErrProfileFieldRequired   = errors.New("at least one field is required")
	ErrNewPasswordsDoNotMatch = errors.New("new passwords do not match")
	ErrInvalidRole            = errors.New("invalid role")
)

// Business-rule failures.
var (
	// ErrEmailAlreadyRegistered is the registration-path conflict for an
	// occupied email address.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrEmailAlreadyInUse is the profile-update-path conflict for an email
	// owned by a different account.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned both when no account owns the email
	// and when the password does not match the stored hash. The two cases are
	// deliberately indistinguishable so responses cannot be used to enumerate
	// registered addresses.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned when a deactivated account attempts to
	// log in.
	ErrAccountInactive = errors.New("account inactive")

	// ErrWrongOldPassword is returned when the current password supplied to a
	// password change does not match the stored hash.
	ErrWrongOldPassword = errors.New("old password incorrect")
)

// Token lifecycle failures.
var (
	// ErrTokenCreationFailed wraps JWT signing errors.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single sentinel every token
	// verification failure is normalised to (malformed, bad signature,
	// expired). Callers reject the request identically in all cases.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
