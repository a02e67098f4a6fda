package update_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	updateReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/update_reservation"
	"github.com/Elmamis69/jmares-reservas/pkg/nullable"
)

// UpdateReservationRequest HTTP request model. Every field is optional;
// absent fields leave the stored value untouched. packageId, attendees
// and notes accept an explicit null to clear the stored value.
type UpdateReservationRequest struct {
	ClientID  *uuid.UUID `json:"clientId,omitempty"`
	Date      *string    `json:"date,omitempty"`      // "2025-11-20"
	StartTime *string    `json:"startTime,omitempty"` // RFC3339
	EndTime   *string    `json:"endTime,omitempty"`   // RFC3339
	Status    *string    `json:"status,omitempty"`
	Total     *float64   `json:"total,omitempty"`
	Deposit   *float64   `json:"deposit,omitempty"`

	PackageID nullable.Field[uuid.UUID] `json:"packageId,omitempty"`
	Attendees nullable.Field[int]       `json:"attendees,omitempty"`
	Notes     nullable.Field[string]    `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        uuid.UUID  `json:"id"`
	ClientID  uuid.UUID  `json:"clientId"`
	PackageID *uuid.UUID `json:"packageId,omitempty"`
	Date      string     `json:"date"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Status    string     `json:"status"`
	Attendees *int       `json:"attendees,omitempty"`
	Total     float64    `json:"total"`
	Deposit   float64    `json:"deposit"`
	Notes     *string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP patch into the use case model,
// parsing any supplied date and interval bounds.
func (r *UpdateReservationRequest) ToUseCaseRequest(id uuid.UUID) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ID:        id,
		ClientID:  r.ClientID,
		Total:     r.Total,
		Deposit:   r.Deposit,
		PackageID: r.PackageID,
		Attendees: r.Attendees,
		Notes:     r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		req.EventDate = &date
	}
	if r.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse startTime: %w", err)
		}
		req.Start = &start
	}
	if r.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse endTime: %w", err)
		}
		req.End = &end
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		PackageID: resp.PackageID,
		Date:      resp.EventDate.Format(domain.DateFormat),
		StartTime: resp.Start,
		EndTime:   resp.End,
		Status:    string(resp.Status),
		Attendees: resp.Attendees,
		Total:     resp.Total,
		Deposit:   resp.Deposit,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}
