package task

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Callers classify errors returned by this package with
// errors.Is against these values.
var (
	// ErrValidation is returned when a field value is outside its domain.
	ErrValidation = errors.New("invalid task field")

	// ErrOutOfRange is returned when a position is outside the list bounds.
	ErrOutOfRange = errors.New("no task at that position")

	// ErrEmptyList is returned when an operation needs at least one task.
	ErrEmptyList = errors.New("task list is empty")

	// ErrMalformedRecord is returned when a persisted record cannot be
	// turned back into a task.
	ErrMalformedRecord = errors.New("malformed task record")
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrInvalidPriority is returned when priority is outside [PriorityMin, PriorityMax].
	ErrInvalidPriority = fmt.Errorf("%w: priority must be between %d and %d", ErrValidation, PriorityMin, PriorityMax)

	// ErrInvalidStatus is returned when a status is not one of the known values.
	ErrInvalidStatus = fmt.Errorf("%w: unknown status", ErrValidation)
)

// ValidateTitle checks if the title is valid. A title of only whitespace
// counts as empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	return nil
}

// ValidateStatus checks if the status is valid.
func ValidateStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, int(status))
	}
	return nil
}

// ValidatePosition checks that position addresses a task in a list of length n.
func ValidatePosition(position, n int) error {
	if n == 0 {
		return ErrEmptyList
	}
	if position < 1 || position > n {
		return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, position, n)
	}
	return nil
}
