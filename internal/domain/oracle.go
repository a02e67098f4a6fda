package domain

import "github.com/google/uuid"

// HasConflict reports whether the candidate interval collides with any
// active reservation in the given set. Cancelled reservations never
// block. The reservation identified by excludeID is skipped, so an update
// does not conflict with the record it is mutating.
//
// Pure and side-effect free: callers are responsible for fetching the
// set under whatever locking the operation requires.
func HasConflict(candidate Interval, excludeID *uuid.UUID, reservations []*Reservation) bool {
	for _, res := range reservations {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if !res.IsActive() {
			continue
		}
		if res.Interval.Overlaps(candidate) {
			return true
		}
	}
	return false
}
