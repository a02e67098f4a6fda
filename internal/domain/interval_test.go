package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, hhmm string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, "2025-11-20T"+hhmm+":00Z")
	require.NoError(t, err)
	return v
}

func interval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := NewInterval(ts(t, start), ts(t, end))
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		iv, err := NewInterval(ts(t, "17:00"), ts(t, "22:00"))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Hour, iv.Duration())
	})

	t.Run("end equal to start fails", func(t *testing.T) {
		_, err := NewInterval(ts(t, "17:00"), ts(t, "17:00"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := NewInterval(ts(t, "22:00"), ts(t, "17:00"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    interval(t, "10:00", "12:00"),
			b:    interval(t, "10:00", "12:00"),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    interval(t, "10:00", "12:00"),
			b:    interval(t, "12:00", "14:00"),
			want: false,
		},
		{
			name: "contained interval overlaps",
			a:    interval(t, "17:00", "22:00"),
			b:    interval(t, "18:00", "19:00"),
			want: true,
		},
		{
			name: "partial overlap at the end",
			a:    interval(t, "10:00", "13:00"),
			b:    interval(t, "12:00", "15:00"),
			want: true,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    interval(t, "08:00", "09:00"),
			b:    interval(t, "20:00", "23:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_OverlapsSelf(t *testing.T) {
	iv := interval(t, "09:00", "11:30")
	assert.True(t, iv.Overlaps(iv))
}
