package auth

import (
	"context"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// UserRepository looks up back-office accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger is the leveled logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
