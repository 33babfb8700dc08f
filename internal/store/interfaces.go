package store

import (
	"context"
	"time"

	"github.com/avkhamov/userhub/models"
)

// UserRepository owns the persistent user records. It is the only component
// allowed to read or write the password hash column.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user owning the given email, including the
	// password hash for credential verification.
	// Fails with ErrNoUserWasFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID.
	// Fails with ErrNoUserWasFound when no record matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the non-empty fields of fullName/email to the
	// user's record and returns the updated row. Fails with
	// ErrEmailAlreadyExists when the new email collides with another account
	// and ErrNoUserWasFound when the user does not exist.
	UpdateProfile(ctx context.Context, userID int64, fullName, email string) (models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// UpdateRole sets the user's role and returns the updated row.
	UpdateRole(ctx context.Context, userID int64, role models.Role) (models.User, error)

	// UpdateStatus sets the user's status and returns the updated row.
	UpdateStatus(ctx context.Context, userID int64, status models.Status) (models.User, error)

	// UpdateLastLogin records the time of a successful login.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// ListUsers returns up to limit users ordered by ID, skipping offset rows.
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)

	// CountUsers returns the total number of user records.
	CountUsers(ctx context.Context) (int64, error)
}
