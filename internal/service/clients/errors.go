package clients

import "errors"

var (
	// ErrInvalidInput is returned when the client payload is malformed.
	ErrInvalidInput = errors.New("invalid client data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("clients service: internal error")
)
