package list_reservations

import (
	"context"

	"github.com/Elmamis69/jmares-reservas/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
