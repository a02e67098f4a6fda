package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
)

// UseCase applies partial updates to reservations.
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase wires the update-reservation use case.
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

// Execute merges the patch into the stored record and commits it. When
// the patch touches the interval, the effective interval (patched fields
// plus inherited ones) is re-validated and re-checked against every other
// active reservation inside the same serializable transaction, so the
// stored record is never left half-updated. An empty patch is a no-op
// returning the unchanged record.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%s", req.ID)

	// 1. Validate the patch.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Read, re-validate and write atomically.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Load the stored record (row-locked in the transaction).
		stored, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%s not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to load reservation id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
		}

		// 2.2. Cancelled records are read-only except for inspection.
		if !stored.IsMutable() && req.touchesData() {
			uc.logger.Warn("UpdateReservation: reservation id=%s is cancelled and read-only", req.ID)
			return fmt.Errorf("%w: cancelled reservation is read-only", ErrInvalidTransition)
		}

		// 2.3. Validate the status transition.
		if req.Status != nil && !stored.CanTransitionTo(*req.Status) {
			uc.logger.Warn("UpdateReservation: illegal transition %s -> %s for id=%s",
				stored.Status, *req.Status, req.ID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, stored.Status, *req.Status)
		}

		// 2.4. Merge scalar fields; the interval is handled below.
		merged := merge(stored, req)
		if req.Status != nil {
			merged.Status = *req.Status
		}

		// 2.5. Recompute the effective interval when either bound is
		// patched, inheriting the other bound from the stored record,
		// and re-run the overlap check excluding this reservation so it
		// never conflicts with itself.
		if req.Start != nil || req.End != nil {
			effStart := stored.Interval.Start
			effEnd := stored.Interval.End
			if req.Start != nil {
				effStart = *req.Start
			}
			if req.End != nil {
				effEnd = *req.End
			}

			effective, err := domain.NewInterval(effStart, effEnd)
			if err != nil {
				uc.logger.Warn("UpdateReservation: invalid effective interval for id=%s: %v", req.ID, err)
				return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
			}

			active, err := uc.reservationRepo.ListActiveOverlapping(txCtx, effective, &req.ID)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to list active reservations: %v", err)
				return fmt.Errorf("%w: failed to list active reservations: %v", ErrInternal, err)
			}
			if domain.HasConflict(effective, &req.ID, active) {
				uc.logger.Warn("UpdateReservation: slot conflict for id=%s, interval [%s, %s)",
					req.ID, effective.Start, effective.End)
				return ErrSlotConflict
			}

			merged.Interval = effective
		}

		// 2.6. Persist the merged record.
		updated, err := uc.reservationRepo.Update(txCtx, merged)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			case errors.Is(err, reservationRepo.ErrReferenceNotFound):
				uc.logger.Warn("UpdateReservation: dangling reference: %v", err)
				return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
			case errors.Is(err, reservationRepo.ErrIntervalTaken):
				uc.logger.Warn("UpdateReservation: interval taken at commit: %v", err)
				return ErrSlotConflict
			default:
				uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", req.ID, err)
				return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
			}
		}

		// Service lines and payments survive a field update untouched.
		updated.ServiceLines = stored.ServiceLines
		updated.Payments = stored.Payments

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", result.ID)
	return FromDomain(result), nil
}
