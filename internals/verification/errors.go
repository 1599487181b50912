package verification

import "errors"

var (
	// ErrValidation covers missing or malformed signup input.
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when the email address is already registered.
	ErrConflict = errors.New("email already registered")
	// ErrNotFound is returned for unknown tokens, emails and mobile numbers.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCode is returned when a supplied mobile code does not match
	// the pending one.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrInvalidCredentials is returned on login for an unknown email or a
	// failed password comparison. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotVerified gates login on email verification.
	ErrNotVerified = errors.New("email not verified")
)
