package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources and unknown tasks.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when an admin task carries no resolvable credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTable is returned for lookup table names outside the allow-list.
	ErrInvalidTable = errors.New("invalid table")
)
