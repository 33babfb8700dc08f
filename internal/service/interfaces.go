package service

import (
	"context"

	"github.com/avkhamov/userhub/models"
)

// AuthService establishes identity: account creation, credential
// verification, and the bearer-token lifecycle.
type AuthService interface {
	// Register validates the registration request, hashes the password, and
	// persists a new user with role "user" and status "active".
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and, on success, updates the user's
	// last-login timestamp. A missing account and a wrong password produce
	// the same ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT carrying the user's ID and role.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string. Every verification failure is
	// normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService orchestrates account mutations and the admin console
// operations. Caller identity is established by the transport layer before
// any of these run.
type UserService interface {
	// GetUser loads a user by ID.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies name/email changes to the caller's own record.
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)

	// ChangePassword verifies the old password and replaces the stored hash.
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error

	// UpdateStatus toggles the target user's status active↔inactive.
	UpdateStatus(ctx context.Context, targetID int64) (models.User, error)

	// UpdateRole sets the target user's role to a member of the closed set.
	UpdateRole(ctx context.Context, targetID int64, role models.Role) (models.User, error)

	// ListUsers returns one page of public user projections plus totals.
	ListUsers(ctx context.Context, page, limit int) (models.UserPageResponse, error)
}
