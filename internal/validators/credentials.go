// Package validators contains pure, deterministic input checks used by the
// service layer. No function here touches the network or the store.
package validators

import "regexp"

// emailPattern requires the shape local@domain.tld: at least one character on
// each side of the "@", a literal dot in the domain part, and no whitespace
// or second "@" anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePasswordStrength checks the server-side password rule for new
// passwords: at least 6 characters, at least one uppercase ASCII letter, and
// at least one digit.
//
// Any stricter rule a client enforces is advisory only; this is the canonical
// check.
//
// Returns nil if the password passes, or the sentinel of the first violated
// rule ([ErrPasswordTooShort], [ErrPasswordNoUppercase], [ErrPasswordNoDigit]).
func ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	hasUpper := false
	hasDigit := false
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUppercase
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}

	return nil
}
