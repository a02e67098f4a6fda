package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// ReservationRepository is the storage surface for read and delete
// operations.
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the leveled logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
