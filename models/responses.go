package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the body of acknowledgement-only endpoints
// (logout, change-password).
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login: a freshly issued bearer
// token plus the public projection of the account it identifies.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// UserResponse is returned by endpoints that mutate a single user record.
type UserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// UserPageResponse is one page of the admin user listing.
//
// TotalPages is ceil(Total/limit); Page echoes the requested page after
// defaulting, so the client can render pagination controls without tracking
// its own request state.
type UserPageResponse struct {
	Success    bool         `json:"success"`
	Users      []PublicUser `json:"users"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}
