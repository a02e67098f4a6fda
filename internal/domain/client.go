package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a catalog entity referenced by reservations. The scheduling
// core never inspects it beyond the foreign key.
type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	Notes     *string
	CreatedAt time.Time
}
