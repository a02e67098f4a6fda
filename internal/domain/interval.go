package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when an interval's end does not come
// strictly after its start.
var ErrInvalidInterval = errors.New("domain: interval end must be after start")

// Interval is a half-open time range [Start, End): the start instant is
// included, the end instant is not. Touching intervals therefore do not
// overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds a validated interval. Fails with ErrInvalidInterval
// when end <= start.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share any instant.
// Half-open semantics: [10:00,12:00) and [12:00,14:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
