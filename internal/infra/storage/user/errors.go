package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
