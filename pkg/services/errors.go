package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found under the caller's groups.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned on a duplicate (group_id, job_id).
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrForbidden is returned when the caller requests a group they do not
	// belong to, including a mismatched personal workspace.
	ErrForbidden = errors.New("forbidden")

	// ErrSecurityViolation is returned when a repository call arrives without
	// a group filter. A query missing its group_id filter is a bug, never a
	// user error.
	ErrSecurityViolation = errors.New("security violation: missing group filter")

	// ErrInvalidConfig is returned for malformed job configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTransition is returned when the status store rejects a
	// lifecycle transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOverloaded is returned when the process pool is at capacity.
	ErrOverloaded = errors.New("executor at capacity")

	// ErrTimeout is returned when a job exceeds its timeout.
	ErrTimeout = errors.New("execution timed out")

	// ErrUpstream is returned when an LLM, tool, or storage backend failed.
	ErrUpstream = errors.New("upstream failure")

	// ErrInternal is returned when a writer or builder crashed.
	ErrInternal = errors.New("internal error")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
