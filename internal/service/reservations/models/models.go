package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// ListRequest narrows a reservation listing to an optional [start, end)
// range. Both bounds must be supplied together.
type ListRequest struct {
	Start *time.Time
	End   *time.Time
}

// ServiceLineResponse is a service line on the wire.
type ServiceLineResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

// PaymentResponse is a payment on the wire.
type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference *string   `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationResponse is a reservation on the wire, nested dependents
// included.
type ReservationResponse struct {
	ID        uuid.UUID  `json:"id"`
	ClientID  uuid.UUID  `json:"clientId"`
	PackageID *uuid.UUID `json:"packageId,omitempty"`
	EventDate string     `json:"date"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Status    string     `json:"status"`
	Attendees *int       `json:"attendees,omitempty"`
	Total     float64    `json:"total"`
	Deposit   float64    `json:"deposit"`
	Notes     *string    `json:"notes,omitempty"`

	Services []ServiceLineResponse `json:"services"`
	Payments []PaymentResponse     `json:"payments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse wraps a listing.
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromDomainReservation converts a domain reservation to its wire form.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	out := &ReservationResponse{
		ID:        res.ID,
		ClientID:  res.ClientID,
		PackageID: res.PackageID,
		EventDate: res.EventDate.Format(domain.DateFormat),
		StartTime: res.Interval.Start,
		EndTime:   res.Interval.End,
		Status:    string(res.Status),
		Attendees: res.Attendees,
		Total:     res.Total,
		Deposit:   res.Deposit,
		Notes:     res.Notes,
		Services:  make([]ServiceLineResponse, 0, len(res.ServiceLines)),
		Payments:  make([]PaymentResponse, 0, len(res.Payments)),
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}

	for _, line := range res.ServiceLines {
		out.Services = append(out.Services, ServiceLineResponse{
			ID:        line.ID,
			ServiceID: line.ServiceID,
			Quantity:  line.Quantity,
		})
	}
	for _, payment := range res.Payments {
		out.Payments = append(out.Payments, PaymentResponse{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Method:    string(payment.Method),
			Reference: payment.Reference,
			CreatedAt: payment.CreatedAt,
		})
	}

	return out
}

// FromDomainReservationList converts a listing to its wire form.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(reservations)),
	}
	for _, res := range reservations {
		out.Reservations = append(out.Reservations, FromDomainReservation(res))
	}
	return out
}
