package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
	"github.com/Elmamis69/jmares-reservas/pkg/ptr"
)

// fakeRepo keeps reservations in memory and mirrors the repository's
// range-query semantics.
type fakeRepo struct {
	reservations []*domain.Reservation
	createErr    error
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	res.ID = uuid.New()
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.reservations = append(f.reservations, res)
	return res, nil
}

func (f *fakeRepo) ListActiveOverlapping(_ context.Context, candidate domain.Interval, excludeID *uuid.UUID) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, res := range f.reservations {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if res.IsActive() && res.Interval.Overlaps(candidate) {
			out = append(out, res)
		}
	}
	return out, nil
}

// fakeTxManager runs the closure directly; atomicity is the real
// manager's concern.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, hhmm string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, "2025-11-20T"+hhmm+":00Z")
	require.NoError(t, err)
	return v
}

func existing(t *testing.T, status domain.ReservationStatus, start, end string) *domain.Reservation {
	t.Helper()
	iv, err := domain.NewInterval(ts(t, start), ts(t, end))
	require.NoError(t, err)
	return &domain.Reservation{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		Status:   status,
		Interval: iv,
	}
}

func validRequest(t *testing.T, start, end string) *Request {
	t.Helper()
	return &Request{
		ClientID:  uuid.New(),
		EventDate: ts(t, "00:00"),
		Start:     ts(t, start),
		End:       ts(t, end),
	}
}

func newUseCase(repo *fakeRepo) *UseCase {
	return NewUseCase(repo, fakeTxManager{}, nopLogger{})
}

func TestExecute_CreatesWithDefaults(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest(t, "17:00", "22:00"))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusHeld, resp.Status)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.Deposit)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, repo.reservations, 1)
}

func TestExecute_HeldReservationBlocks(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		existing(t, domain.StatusHeld, "18:00", "19:00"),
	}}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest(t, "17:00", "22:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, repo.reservations, 1, "no write on conflict")
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		existing(t, domain.StatusCancelled, "18:00", "19:00"),
	}}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest(t, "17:00", "22:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHeld, resp.Status)
}

func TestExecute_TouchingIntervalSucceeds(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		existing(t, domain.StatusConfirmed, "10:00", "12:00"),
	}}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest(t, "12:00", "14:00"))
	assert.NoError(t, err)
}

func TestExecute_InvalidInterval(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), validRequest(t, "22:00", "17:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing client id", func(r *Request) { r.ClientID = uuid.Nil }},
		{"negative attendees", func(r *Request) { r.Attendees = ptr.Ptr(-1) }},
		{"negative total", func(r *Request) { r.Total = ptr.Ptr(-50.0) }},
		{"negative deposit", func(r *Request) { r.Deposit = ptr.Ptr(-1.0) }},
		{"unknown status", func(r *Request) { r.Status = ptr.Ptr(domain.ReservationStatus("PENDING")) }},
		{"zero-quantity service line", func(r *Request) {
			r.ServiceLines = []ServiceLineInput{{ServiceID: uuid.New(), Quantity: 0}}
		}},
		{"non-positive payment", func(r *Request) {
			r.Payments = []PaymentInput{{Amount: 0, Method: domain.PaymentCash}}
		}},
		{"unknown payment method", func(r *Request) {
			r.Payments = []PaymentInput{{Amount: 100, Method: domain.PaymentMethod("CRYPTO")}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t, "17:00", "22:00")
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DanglingClientReference(t *testing.T) {
	repo := &fakeRepo{createErr: reservationRepo.ErrReferenceNotFound}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest(t, "17:00", "22:00"))
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestExecute_ConstraintRaceMapsToConflict(t *testing.T) {
	// A concurrent committer that slipped past the in-transaction check
	// surfaces as the store constraint rejecting the insert.
	repo := &fakeRepo{createErr: reservationRepo.ErrIntervalTaken}
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest(t, "17:00", "22:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_NestedLinesAndPayments(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo)

	req := validRequest(t, "17:00", "22:00")
	req.Status = ptr.Ptr(domain.StatusConfirmed)
	req.Total = ptr.Ptr(35000.0)
	req.Deposit = ptr.Ptr(5000.0)
	req.ServiceLines = []ServiceLineInput{{ServiceID: uuid.New(), Quantity: 2}}
	req.Payments = []PaymentInput{{Amount: 5000, Method: domain.PaymentTransfer, Reference: ptr.Ptr("DEP-0001")}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, 35000.0, resp.Total)
	require.Len(t, resp.ServiceLines, 1)
	assert.Equal(t, 2, resp.ServiceLines[0].Quantity)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, domain.PaymentTransfer, resp.Payments[0].Method)
}
