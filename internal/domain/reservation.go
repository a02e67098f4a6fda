package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	// StatusHeld is the initial state: the slot is taken but the booking
	// is not yet confirmed (e.g. waiting for the deposit).
	StatusHeld ReservationStatus = "HELD"
	// StatusConfirmed means the deposit was received and the event is on.
	StatusConfirmed ReservationStatus = "CONFIRMED"
	// StatusCancelled is terminal; the slot is released but the record is
	// kept for history.
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is a time-boxed booking of the venue for a client.
type Reservation struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	PackageID *uuid.UUID
	EventDate time.Time
	Interval  Interval
	Status    ReservationStatus
	Attendees *int
	Total     float64
	Deposit   float64
	Notes     *string

	ServiceLines []ServiceLine
	Payments     []Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceLine attaches a catalog service to a reservation. It is not
// independently addressable; it lives and dies with its reservation.
type ServiceLine struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ServiceID     uuid.UUID
	Quantity      int
}

// PaymentMethod enumerates accepted payment methods.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCard     PaymentMethod = "CARD"
)

// Payment records money received against a reservation. Append-only.
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        float64
	Method        PaymentMethod
	Reference     *string
	CreatedAt     time.Time
}

// IsActive reports whether the reservation occupies its interval: only
// held and confirmed reservations block the slot, cancelled ones never do.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusHeld || r.Status == StatusConfirmed
}

// IsMutable reports whether the reservation's interval and monetary
// fields may still change. A cancelled record is read-only by policy,
// not by accident: it stays inspectable but rejects edits.
func (r *Reservation) IsMutable() bool {
	return r.Status != StatusCancelled
}

// CanTransitionTo validates a status change against the lifecycle:
// HELD -> CONFIRMED -> CANCELLED, with HELD -> CANCELLED allowed and
// CANCELLED terminal. Setting the current status again is a no-op and
// always permitted.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.Status == next {
		return true
	}
	switch r.Status {
	case StatusHeld:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// ValidStatus reports whether s is a known reservation status.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard:
		return true
	}
	return false
}

// ListFilter narrows reservation listings to an optional time range.
// Range semantics are intersection: any reservation sharing at least one
// instant with [Start, End) is included, so events straddling a boundary
// still show up on the calendar.
type ListFilter struct {
	Range *Interval
}
