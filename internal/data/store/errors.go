package store

import "errors"

var (
	// ErrConflict is returned when a record violates a uniqueness rule,
	// e.g. signing up with an email that already exists in the collection.
	ErrConflict = errors.New("record already exists")

	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")
)
