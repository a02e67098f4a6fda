package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
	"github.com/Elmamis69/jmares-reservas/internal/service/reservations/models"
)

// Service serves reservation reads and deletes. Mutations that need the
// overlap check live in the dedicated use cases.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the reservations service.
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID fetches one reservation with its service lines and payments.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List returns reservations ordered by start ascending. With a range,
// intersection semantics apply: every reservation sharing at least one
// instant with [start, end) is included, so events straddling a boundary
// still appear. Both bounds must be supplied together.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ListFilter{}

	if req.Start != nil || req.End != nil {
		if req.Start == nil || req.End == nil {
			s.logger.Warn("List: range requires both start and end")
			return nil, fmt.Errorf("%w: range requires both start and end", ErrInvalidRange)
		}
		rangeInterval, err := domain.NewInterval(*req.Start, *req.End)
		if err != nil {
			s.logger.Warn("List: invalid range: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		filter.Range = &rangeInterval
		s.logger.Info("List: fetching reservations in [%s, %s)", rangeInterval.Start, rangeInterval.End)
	} else {
		s.logger.Info("List: fetching all reservations")
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Delete hard-removes a reservation together with its service lines and
// payments. The cascade makes the removal a single atomic statement, and
// the freed interval becomes bookable immediately.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%s", id)
	return nil
}
