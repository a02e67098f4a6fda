package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidInterval is returned when the requested end does not come
	// after the start.
	ErrInvalidInterval = errors.New("create_reservation: invalid interval")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// active reservation.
	ErrSlotConflict = errors.New("create_reservation: time slot conflicts with an active reservation")

	// ErrReferenceNotFound is returned when the clientId, packageId or a
	// service line's serviceId does not resolve.
	ErrReferenceNotFound = errors.New("create_reservation: referenced entity not found")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_reservation: internal error")
)
