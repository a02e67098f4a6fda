package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// ServiceLineInput is a catalog service attached to the new reservation.
type ServiceLineInput struct {
	ServiceID uuid.UUID
	Quantity  int
}

// PaymentInput is a payment recorded together with the new reservation,
// typically the deposit.
type PaymentInput struct {
	Amount    float64
	Method    domain.PaymentMethod
	Reference *string
}

// Request carries the validated input for creating a reservation.
// Optional fields default at creation: status to HELD, total and deposit
// to 0.
type Request struct {
	ClientID  uuid.UUID
	PackageID *uuid.UUID
	EventDate time.Time
	Start     time.Time
	End       time.Time
	Status    *domain.ReservationStatus
	Attendees *int
	Total     *float64
	Deposit   *float64
	Notes     *string

	ServiceLines []ServiceLineInput
	Payments     []PaymentInput
}

// Response is the fully materialized reservation after commit.
type Response struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	PackageID *uuid.UUID
	EventDate time.Time
	Start     time.Time
	End       time.Time
	Status    domain.ReservationStatus
	Attendees *int
	Total     float64
	Deposit   float64
	Notes     *string

	ServiceLines []domain.ServiceLine
	Payments     []domain.Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomain converts a persisted reservation into the use case response.
func FromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:           res.ID,
		ClientID:     res.ClientID,
		PackageID:    res.PackageID,
		EventDate:    res.EventDate,
		Start:        res.Interval.Start,
		End:          res.Interval.End,
		Status:       res.Status,
		Attendees:    res.Attendees,
		Total:        res.Total,
		Deposit:      res.Deposit,
		Notes:        res.Notes,
		ServiceLines: res.ServiceLines,
		Payments:     res.Payments,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
}
