package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role gates access to mutating endpoints.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// User is a back-office account able to log in and manage reservations.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
