package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidRange is returned when a list range is malformed (missing
	// bound or end not after start).
	ErrInvalidRange = errors.New("invalid time range")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("reservations service: internal error")
)
