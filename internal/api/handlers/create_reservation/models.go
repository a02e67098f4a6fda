package create_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	createReservation "github.com/Elmamis69/jmares-reservas/internal/usecase/create_reservation"
)

// ServiceLineRequest is a catalog service attached to the reservation.
type ServiceLineRequest struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

// PaymentRequest is a payment recorded with the reservation.
type PaymentRequest struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference *string `json:"reference,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientID  uuid.UUID  `json:"clientId"`
	PackageID *uuid.UUID `json:"packageId,omitempty"`
	Date      string     `json:"date"`      // "2025-11-20"
	StartTime string     `json:"startTime"` // RFC3339
	EndTime   string     `json:"endTime"`   // RFC3339
	Status    *string    `json:"status,omitempty"`
	Attendees *int       `json:"attendees,omitempty"`
	Total     *float64   `json:"total,omitempty"`
	Deposit   *float64   `json:"deposit,omitempty"`
	Notes     *string    `json:"notes,omitempty"`

	Services []ServiceLineRequest `json:"services,omitempty"`
	Payments []PaymentRequest     `json:"payments,omitempty"`
}

// ServiceLineResponse is a persisted service line on the wire.
type ServiceLineResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

// PaymentResponse is a persisted payment on the wire.
type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference *string   `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
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

	Services []ServiceLineResponse `json:"services"`
	Payments []PaymentResponse     `json:"payments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and the interval bounds.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse startTime: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse endTime: %w", err)
	}

	req := &createReservation.Request{
		ClientID:  r.ClientID,
		PackageID: r.PackageID,
		EventDate: date,
		Start:     start,
		End:       end,
		Attendees: r.Attendees,
		Total:     r.Total,
		Deposit:   r.Deposit,
		Notes:     r.Notes,
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		req.Status = &status
	}
	for _, line := range r.Services {
		req.ServiceLines = append(req.ServiceLines, createReservation.ServiceLineInput{
			ServiceID: line.ServiceID,
			Quantity:  line.Quantity,
		})
	}
	for _, payment := range r.Payments {
		req.Payments = append(req.Payments, createReservation.PaymentInput{
			Amount:    payment.Amount,
			Method:    domain.PaymentMethod(payment.Method),
			Reference: payment.Reference,
		})
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
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
		Services:  make([]ServiceLineResponse, 0, len(resp.ServiceLines)),
		Payments:  make([]PaymentResponse, 0, len(resp.Payments)),
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}

	for _, line := range resp.ServiceLines {
		out.Services = append(out.Services, ServiceLineResponse{
			ID:        line.ID,
			ServiceID: line.ServiceID,
			Quantity:  line.Quantity,
		})
	}
	for _, payment := range resp.Payments {
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
