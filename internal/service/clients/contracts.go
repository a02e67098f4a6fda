package clients

import (
	"context"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// ClientRepository is the storage surface for catalog clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

// Logger is the leveled logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
