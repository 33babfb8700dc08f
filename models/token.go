package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends the standard registered claims (iss, sub, iat, exp) with a
// private "role" claim holding the user's role as of issuance time. The role
// claim is a snapshot: changing a user's role does not alter tokens that have
// already been issued — stateless tokens are revoked only by expiry.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the user's access level at the moment the token was signed.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Role are parsed copies of the "sub" and "role" claims, populated
// during token construction or validation so that callers do not re-parse the
// claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is the access level extracted from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
