package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
)

// CreateClientRequest is the payload for registering a client.
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ClientResponse is a client on the wire.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientListResponse wraps a listing.
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
}

// FromDomainClient converts a domain client to its wire form.
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClientList converts a listing to its wire form.
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	out := &ClientListResponse{Clients: make([]*ClientResponse, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, FromDomainClient(c))
	}
	return out
}
