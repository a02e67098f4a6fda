package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password; callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput is returned when the login payload is malformed.
	ErrInvalidInput = errors.New("invalid login data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("auth service: internal error")
)
