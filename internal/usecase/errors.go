package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohanranjan0902/Scheduling-Platform/internal/data/repository"
)

var (
	// ErrInvalidInput marks malformed or missing caller input.
	ErrInvalidInput = errors.New("usecase: invalid input")
	// ErrNotFound marks a referenced operator, event type or booking that
	// does not exist.
	ErrNotFound = errors.New("usecase: not found")
	// ErrSlotTaken marks a requested slot that is no longer free. Callers
	// must re-query availability before retrying.
	ErrSlotTaken = errors.New("usecase: slot taken")
	// ErrStoreUnavailable marks a transient store failure. Safe to retry
	// with backoff, unlike ErrSlotTaken.
	ErrStoreUnavailable = errors.New("usecase: store unavailable")
)

// classifyStoreError maps repository failures onto the service taxonomy.
// Timeouts become retryable; everything unrecognized stays opaque and is
// reported as an internal failure by the transport layer.
func classifyStoreError(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s timed out: %w", op, ErrStoreUnavailable)
	case errors.Is(err, repository.ErrOverlap):
		return fmt.Errorf("%s: slot already booked: %w", op, ErrSlotTaken)
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateSlug):
		return fmt.Errorf("%s: slug must be unique: %w", op, ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
