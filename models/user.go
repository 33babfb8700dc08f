package models

import "time"

// Role is the closed set of access levels a user can hold.
// Any other value is rejected at the API boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Status is the closed set of account states.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Toggle returns the opposite account state.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries; external
// responses carry the [PublicUser] projection instead of this struct.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique login identifier. Stored case-sensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is excluded from JSON
	// and leaves the store only for credential verification.
	PasswordHash string `json:"-"`

	// Role is the access level of the account.
	// Defaults to [RoleUser] at registration.
	Role Role `json:"role"`

	// Status marks the account active or deactivated by an administrator.
	// Defaults to [StatusActive] at registration.
	Status Status `json:"status"`

	// LastLogin is the time of the most recent successful login.
	// Nil until the user has logged in at least once.
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the subset of a User record safe to return externally.
// The password hash is excluded by construction: the type has no field
// that could carry it.
type PublicUser struct {
	UserID    int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    Status     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Public returns the outward-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
