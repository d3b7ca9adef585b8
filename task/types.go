// Package task implements a personal task list persisted to a JSON file.
//
// A Store owns an ordered list of tasks. Tasks have no identity of their own;
// callers address them by their 1-based position in the current list order.
//
// The public API mirrors the menu:
//   - Add, View, Sort for the list as a whole
//   - MarkDone, ChangePriority, Delete for a single position
//   - Open and Save for persistence
package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a task.
type Status int

const (
	// StatusNotStarted indicates work on the task has not begun.
	StatusNotStarted Status = iota

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress

	// StatusDone indicates the task is finished. No transition leaves it.
	StatusDone
)

var statusLabels = [...]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
}

// ValidStatuses returns all valid status values in menu order.
func ValidStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	return s >= StatusNotStarted && s <= StatusDone
}

// String returns the display label, which is also the persisted form.
func (s Status) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

// ParseStatus returns the status whose label matches exactly.
func ParseStatus(label string) (Status, error) {
	for _, s := range ValidStatuses() {
		if statusLabels[s] == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, label)
}

// LookupStatus is a lenient ParseStatus for user input. It ignores case and
// accepts hyphens or underscores in place of spaces.
func LookupStatus(value string) (Status, error) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(value))
	for _, s := range ValidStatuses() {
		if strings.EqualFold(normalized, statusLabels[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// MarshalJSON encodes the status as its label.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return json.Marshal(statusLabels[s])
}

// UnmarshalJSON decodes a status label.
func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, data)
	}
	parsed, err := ParseStatus(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Priority constants for tasks. Lower numbers are more urgent.
const (
	PriorityHighest = 0
	PriorityLowest  = 5

	PriorityMin = PriorityHighest
	PriorityMax = PriorityLowest
)

// Direction selects the order used by Sort.
type Direction int

const (
	// Ascending puts the most urgent (lowest number) tasks first.
	Ascending Direction = iota

	// Descending puts the least urgent tasks first.
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
