// Package apperr defines the error taxonomy shared by all engine services.
// Handlers map these to HTTP statuses with errors.Is; everything else wraps
// them with fmt.Errorf("...: %w", ...).
package apperr

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the operation would violate an invariant
	// (double active assignment, double-claimed location) or the store
	// reported a transaction conflict. Conflict is the only retryable kind.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument means a required field is missing or malformed for
	// the operation's kind.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState means the target entity is not in the state the
	// operation requires (e.g. completing a non-active assignment).
	ErrInvalidState = errors.New("invalid state")
	// ErrNoCapacity means no free parking location could be resolved.
	ErrNoCapacity = errors.New("no capacity")
)
