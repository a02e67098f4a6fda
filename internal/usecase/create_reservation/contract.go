package create_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// ReservationRepository is the storage surface this use case needs.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListActiveOverlapping(ctx context.Context, candidate domain.Interval, excludeID *uuid.UUID) ([]*domain.Reservation, error)
}

// TransactionManager wraps the availability check and the insert into one
// atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
