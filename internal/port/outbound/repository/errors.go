package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("entity already exists")
)
