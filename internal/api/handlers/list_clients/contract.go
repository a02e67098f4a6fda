package list_clients

import (
	"context"

	"github.com/Elmamis69/jmares-reservas/internal/service/clients/models"
)

type ClientsService interface {
	List(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
