package domain

import "fmt"

// Error types for consistent error handling across the tracker.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrInvalidRecurrence indicates a recurrence interval below 1. The
// engines fail on this rather than clamping; the interval is a caller
// contract violation surfaced as an input-validation message.
type ErrInvalidRecurrence struct {
	Interval int
}

func (e *ErrInvalidRecurrence) Error() string {
	return fmt.Sprintf("invalid recurrence interval: %d (must be >= 1)", e.Interval)
}

// ErrInvalidAmount indicates a negative monetary value where only
// non-negative values make sense (distribution totals, credit limits).
type ErrInvalidAmount struct {
	Field  string
	Amount float64
}

func (e *ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount for '%s': %.2f", e.Field, e.Amount)
}
