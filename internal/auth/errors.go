package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email/password pair does
	// not match a stored account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by SignUp when the email already has an
	// account.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrNotSignedIn is returned when an operation requires a principal
	// and none is present.
	ErrNotSignedIn = errors.New("not signed in")
)
