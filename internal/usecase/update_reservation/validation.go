package update_reservation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// validateRequest checks the patch fields that can be decided without the
// stored record.
func validateRequest(req *Request) error {
	if req.ID == uuid.Nil {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientId must not be empty", ErrInvalidInput)
	}

	if req.Status != nil && !domain.ValidStatus(*req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Attendees.Set && req.Attendees.Valid {
		if req.Attendees.Value < 0 {
			return fmt.Errorf("%w: attendees must be non-negative", ErrInvalidInput)
		}
		if req.Attendees.Value > domain.MaxAttendees {
			return fmt.Errorf("%w: attendees exceeds %d", ErrInvalidInput, domain.MaxAttendees)
		}
	}

	if req.Total != nil && *req.Total < 0 {
		return fmt.Errorf("%w: total must be non-negative", ErrInvalidInput)
	}
	if req.Deposit != nil && *req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must be non-negative", ErrInvalidInput)
	}

	if req.Notes.Set && req.Notes.Valid && len(req.Notes.Value) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceeds %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// merge applies the patch onto a copy of the stored record. Absent fields
// keep their stored values; explicit nulls clear the nullable ones. The
// interval is merged separately by the caller because it needs
// re-validation and the overlap check.
func merge(stored *domain.Reservation, req *Request) *domain.Reservation {
	merged := *stored

	if req.ClientID != nil {
		merged.ClientID = *req.ClientID
	}
	if req.EventDate != nil {
		merged.EventDate = *req.EventDate
	}
	if req.Total != nil {
		merged.Total = *req.Total
	}
	if req.Deposit != nil {
		merged.Deposit = *req.Deposit
	}
	if req.PackageID.Set {
		merged.PackageID = req.PackageID.Ptr()
	}
	if req.Attendees.Set {
		merged.Attendees = req.Attendees.Ptr()
	}
	if req.Notes.Set {
		merged.Notes = req.Notes.Ptr()
	}

	return &merged
}
