package task

import "fmt"

// Task represents a single work item.
//
// A Task has no identity beyond its position in a Store. Two tasks with equal
// fields are interchangeable.
type Task struct {
	// Title is the short summary of the task. Never empty.
	Title string

	// Description provides additional context. May be empty.
	Description string

	// Priority is the urgency rank (0=highest, 5=lowest).
	Priority int

	// Status is the current lifecycle state.
	Status Status
}

// New creates a task after validating every field.
func New(title, description string, priority int, status Status) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}
	if err := ValidateStatus(status); err != nil {
		return Task{}, err
	}
	return Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      status,
	}, nil
}

// MarkDone sets the status to done. Calling it on a done task is a no-op.
func (t *Task) MarkDone() {
	t.Status = StatusDone
}

// UpdatePriority replaces the priority. The task is unchanged on error.
func (t *Task) UpdatePriority(priority int) error {
	if err := ValidatePriority(priority); err != nil {
		return err
	}
	t.Priority = priority
	return nil
}

// Record is the persisted form of a task. A nil field means the key was
// absent from the source document.
type Record struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	Status      *Status `json:"status"`
}

// ToRecord returns the persisted form of the task.
func (t Task) ToRecord() Record {
	title := t.Title
	description := t.Description
	priority := t.Priority
	status := t.Status
	return Record{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		Status:      &status,
	}
}

// FromRecord rebuilds a task from its persisted form. Every error it returns
// matches ErrMalformedRecord.
func FromRecord(r Record) (Task, error) {
	switch {
	case r.Title == nil:
		return Task{}, missingKey("title")
	case r.Description == nil:
		return Task{}, missingKey("description")
	case r.Priority == nil:
		return Task{}, missingKey("priority")
	case r.Status == nil:
		return Task{}, missingKey("status")
	}

	t, err := New(*r.Title, *r.Description, *r.Priority, *r.Status)
	if err != nil {
		return Task{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return t, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: missing %q", ErrMalformedRecord, key)
}
