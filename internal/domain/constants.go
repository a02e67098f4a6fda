package domain

// Business validation constants
const (
	MaxNotesLength     = 2000
	MaxNameLength      = 200
	MaxReferenceLength = 100
	MaxAttendees       = 100000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses that occupy a time slot. Used by the
// storage layer when selecting the set the overlap check runs against.
var ActiveStatuses = []ReservationStatus{
	StatusHeld,
	StatusConfirmed,
}
