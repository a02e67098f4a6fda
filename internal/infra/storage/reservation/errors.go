package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when a reservation does not exist.
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrReferenceNotFound is returned when a clientId/packageId/serviceId
	// foreign key does not resolve at commit time.
	ErrReferenceNotFound = errors.New("reservation.repository: referenced entity not found")

	// ErrIntervalTaken is returned when the store-level exclusion
	// constraint rejects an interval already occupied by an active
	// reservation.
	ErrIntervalTaken = errors.New("reservation.repository: interval already taken")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
