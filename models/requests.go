package models

// Per-operation request bodies. Each protected or mutating endpoint decodes
// into one of these explicit structs and validates it before the service
// layer runs.

// RegisterRequest is the body of POST /api/auth/register.
// All four fields are required.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/users/profile.
// At least one of the fields must be non-empty; empty fields keep their
// current value.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ChangePasswordRequest is the body of PUT /api/users/change-password.
// All three fields are required.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateRoleRequest is the body of PATCH /api/users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}
