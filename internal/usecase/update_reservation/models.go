package update_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	"github.com/Elmamis69/jmares-reservas/pkg/nullable"
)

// Request is a partial update. Nil pointer fields were absent from the
// payload and leave the stored value untouched. The nullable.Field
// members additionally distinguish an explicit null, which clears the
// stored value; required columns use plain pointers because clearing
// them is not meaningful.
type Request struct {
	ID uuid.UUID

	ClientID  *uuid.UUID
	EventDate *time.Time
	Start     *time.Time
	End       *time.Time
	Status    *domain.ReservationStatus
	Total     *float64
	Deposit   *float64

	PackageID nullable.Field[uuid.UUID]
	Attendees nullable.Field[int]
	Notes     nullable.Field[string]
}

// touchesData reports whether the patch modifies anything besides the
// status. Used to enforce the read-only policy on cancelled records.
func (r *Request) touchesData() bool {
	return r.ClientID != nil ||
		r.EventDate != nil ||
		r.Start != nil ||
		r.End != nil ||
		r.Total != nil ||
		r.Deposit != nil ||
		r.PackageID.Set ||
		r.Attendees.Set ||
		r.Notes.Set
}

// Response is the updated reservation after commit.
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
