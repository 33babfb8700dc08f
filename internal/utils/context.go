// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, JWT token generation and
// validation, password hashing, and HTTP response writing.
package utils

import (
	"context"

	"github.com/avkhamov/userhub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthUserCtxKey is the key under which the auth middleware stores the
// authenticated user record after token verification and identity refresh.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthUserCtxKey, user)
var AuthUserCtxKey = contextKey("authUser")

// GetAuthUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetAuthUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(AuthUserCtxKey).(models.User)
	return user, ok
}
