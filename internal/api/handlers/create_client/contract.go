package create_client

import (
	"context"

	"github.com/Elmamis69/jmares-reservas/internal/service/clients/models"
)

type ClientsService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
