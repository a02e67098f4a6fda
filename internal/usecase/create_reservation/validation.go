package create_reservation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// validateRequest checks everything that can be decided without touching
// the store. Existence of the referenced client/package/services is left
// to the foreign-key constraints at commit time.
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Attendees != nil && *req.Attendees < 0 {
		return fmt.Errorf("%w: attendees must be non-negative", ErrInvalidInput)
	}
	if req.Attendees != nil && *req.Attendees > domain.MaxAttendees {
		return fmt.Errorf("%w: attendees exceeds %d", ErrInvalidInput, domain.MaxAttendees)
	}
	if req.Total != nil && *req.Total < 0 {
		return fmt.Errorf("%w: total must be non-negative", ErrInvalidInput)
	}
	if req.Deposit != nil && *req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must be non-negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for i, line := range req.ServiceLines {
		if line.ServiceID == uuid.Nil {
			return fmt.Errorf("%w: services[%d].serviceId is required", ErrInvalidInput, i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: services[%d].quantity must be positive", ErrInvalidInput, i)
		}
	}

	for i, payment := range req.Payments {
		if payment.Amount <= 0 {
			return fmt.Errorf("%w: payments[%d].amount must be positive", ErrInvalidInput, i)
		}
		if !domain.ValidPaymentMethod(payment.Method) {
			return fmt.Errorf("%w: payments[%d].method %q is unknown", ErrInvalidInput, i, payment.Method)
		}
		if payment.Reference != nil && len(*payment.Reference) > domain.MaxReferenceLength {
			return fmt.Errorf("%w: payments[%d].reference exceeds %d characters", ErrInvalidInput, i, domain.MaxReferenceLength)
		}
	}

	return nil
}
