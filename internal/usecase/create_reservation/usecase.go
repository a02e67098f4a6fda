package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
)

// UseCase creates reservations.
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase wires the create-reservation use case.
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute validates the request, checks the candidate interval against
// every active reservation and commits the new record. The availability
// read and the insert run in one serializable transaction, so two
// concurrent requests for overlapping intervals cannot both observe "no
// conflict" and both commit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%s, start=%s, end=%s",
		req.ClientID, req.Start, req.End)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Build the candidate interval (end must come after start).
	candidate, err := domain.NewInterval(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	var result *domain.Reservation

	// 3. Check-then-insert inside a serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Fetch the active reservations intersecting the candidate.
		// Rows come back locked (FOR UPDATE) for the transaction's
		// lifetime.
		active, err := uc.reservationRepo.ListActiveOverlapping(txCtx, candidate, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list active reservations: %v", err)
			return fmt.Errorf("%w: failed to list active reservations: %v", ErrInternal, err)
		}

		// 3.2. Apply the overlap predicate.
		if domain.HasConflict(candidate, nil, active) {
			uc.logger.Warn("CreateReservation: slot conflict for [%s, %s)", req.Start, req.End)
			return ErrSlotConflict
		}

		// 3.3. Materialize the reservation with creation defaults.
		res := &domain.Reservation{
			ClientID:  req.ClientID,
			PackageID: req.PackageID,
			EventDate: req.EventDate,
			Interval:  candidate,
			Status:    domain.StatusHeld,
			Attendees: req.Attendees,
			Notes:     req.Notes,
		}
		if req.Status != nil {
			res.Status = *req.Status
		}
		if req.Total != nil {
			res.Total = *req.Total
		}
		if req.Deposit != nil {
			res.Deposit = *req.Deposit
		}
		for _, line := range req.ServiceLines {
			res.ServiceLines = append(res.ServiceLines, domain.ServiceLine{
				ServiceID: line.ServiceID,
				Quantity:  line.Quantity,
			})
		}
		for _, payment := range req.Payments {
			res.Payments = append(res.Payments, domain.Payment{
				Amount:    payment.Amount,
				Method:    payment.Method,
				Reference: payment.Reference,
			})
		}

		// 3.4. Persist reservation, service lines and payments together.
		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrReferenceNotFound):
				uc.logger.Warn("CreateReservation: dangling reference: %v", err)
				return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
			case errors.Is(err, reservationRepo.ErrIntervalTaken):
				// The store-level constraint beat us to it.
				uc.logger.Warn("CreateReservation: interval taken at commit: %v", err)
				return ErrSlotConflict
			default:
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)
	return FromDomain(result), nil
}
