package store

import "errors"

var (
	// ErrConflict is returned when an insert collides with a unique key.
	ErrConflict = errors.New("unique key conflict")

	// ErrNotFound is returned by single-row lookups that match nothing.
	ErrNotFound = errors.New("not found")
)
