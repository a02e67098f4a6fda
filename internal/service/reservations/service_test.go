package reservations

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	reservationRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/reservation"
	"github.com/Elmamis69/jmares-reservas/internal/service/reservations/models"
	"github.com/Elmamis69/jmares-reservas/pkg/ptr"
)

type fakeRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	for _, res := range f.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.ListFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range f.reservations {
		if filter.Range != nil && !res.Interval.Overlaps(*filter.Range) {
			continue
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Interval.Start.Before(out[j].Interval.Start)
	})
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, res := range f.reservations {
		if res.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return reservationRepo.ErrReservationNotFound
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

func reservation(t *testing.T, start, end string) *domain.Reservation {
	t.Helper()
	iv, err := domain.NewInterval(ts(t, start), ts(t, end))
	require.NoError(t, err)
	return &domain.Reservation{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		Status:   domain.StatusHeld,
		Interval: iv,
	}
}

func TestGetByID(t *testing.T) {
	stored := reservation(t, "17:00", "22:00")
	svc := NewService(&fakeRepo{reservations: []*domain.Reservation{stored}}, nopLogger{})

	t.Run("existing reservation", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, resp.ID)
		assert.Equal(t, "HELD", resp.Status)
	})

	t.Run("missing reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestList(t *testing.T) {
	early := reservation(t, "09:00", "11:00")
	late := reservation(t, "17:00", "22:00")
	svc := NewService(&fakeRepo{reservations: []*domain.Reservation{late, early}}, nopLogger{})

	t.Run("no range returns all ordered by start", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 2)
		assert.Equal(t, early.ID, resp.Reservations[0].ID)
		assert.Equal(t, late.ID, resp.Reservations[1].ID)
	})

	t.Run("range keeps intersecting reservations, boundary-straddlers included", func(t *testing.T) {
		// The query range starts mid-way through the late reservation.
		resp, err := svc.List(context.Background(), &models.ListRequest{
			Start: ptr.Ptr(ts(t, "18:00")),
			End:   ptr.Ptr(ts(t, "23:00")),
		})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, late.ID, resp.Reservations[0].ID)
	})

	t.Run("half-open range excludes touching reservation", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListRequest{
			Start: ptr.Ptr(ts(t, "11:00")),
			End:   ptr.Ptr(ts(t, "17:00")),
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Reservations)
	})

	t.Run("one-sided range is rejected", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListRequest{Start: ptr.Ptr(ts(t, "10:00"))})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListRequest{
			Start: ptr.Ptr(ts(t, "17:00")),
			End:   ptr.Ptr(ts(t, "10:00")),
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestDelete(t *testing.T) {
	stored := reservation(t, "17:00", "22:00")
	repo := &fakeRepo{reservations: []*domain.Reservation{stored}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), stored.ID))
	assert.Empty(t, repo.reservations)

	assert.ErrorIs(t, svc.Delete(context.Background(), stored.ID), ErrReservationNotFound)
}
