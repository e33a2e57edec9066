package repository

import "errors"

var (
	// ErrNotFound is returned when a conditional write matched no row.
	ErrNotFound = errors.New("repository: not found")
	// ErrOverlap is returned when a booking insert lost to an existing
	// confirmed booking occupying an intersecting time range.
	ErrOverlap = errors.New("repository: booking overlap")
	// ErrDuplicateSlug is returned when an event type slug is already taken.
	ErrDuplicateSlug = errors.New("repository: duplicate slug")
)
