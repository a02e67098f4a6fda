package update_reservation

import "errors"

var (
	// ErrInvalidInput is returned when the patch fails validation.
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInvalidInterval is returned when the effective interval's end
	// does not come after its start.
	ErrInvalidInterval = errors.New("update_reservation: invalid interval")

	// ErrReservationNotFound is returned when the target does not exist.
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrSlotConflict is returned when the new interval overlaps another
	// active reservation.
	ErrSlotConflict = errors.New("update_reservation: time slot conflicts with an active reservation")

	// ErrInvalidTransition is returned for illegal status changes and for
	// any edit of a cancelled reservation, which is read-only by policy.
	ErrInvalidTransition = errors.New("update_reservation: invalid status transition")

	// ErrReferenceNotFound is returned when a patched clientId/packageId
	// does not resolve.
	ErrReferenceNotFound = errors.New("update_reservation: referenced entity not found")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("update_reservation: internal error")
)
