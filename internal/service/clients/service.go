package clients

import (
	"context"
	"fmt"
	"strings"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	"github.com/Elmamis69/jmares-reservas/internal/service/clients/models"
)

// Service manages the client catalog.
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService creates the clients service.
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create registers a new client. Name is the only required field.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: client name is required")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		s.logger.Warn("Create: client name too long (%d chars)", len(name))
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:  name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// List returns every client, newest first.
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}
