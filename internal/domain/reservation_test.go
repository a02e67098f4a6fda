package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"held to confirmed", StatusHeld, StatusConfirmed, true},
		{"held to cancelled", StatusHeld, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to held", StatusConfirmed, StatusHeld, false},
		{"cancelled to held", StatusCancelled, StatusHeld, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"same status is a no-op", StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reservation{Status: tt.from}
			assert.Equal(t, tt.want, r.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusHeld}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
}

func TestReservation_IsMutable(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusHeld}).IsMutable())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsMutable())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsMutable())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusHeld))
	assert.False(t, ValidStatus(ReservationStatus("PENDING")))
}
