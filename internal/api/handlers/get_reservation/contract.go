package get_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
