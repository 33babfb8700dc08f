package validators

import "errors"

// Password strength violations. Each rule failure has its own sentinel so the
// HTTP layer can surface the exact reason to the client; all of them map to a
// 400 response.
var (
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordNoUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain a number")
)
