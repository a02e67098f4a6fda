package client

import "errors"

var (
	// ErrClientNotFound is returned when a client does not exist.
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
