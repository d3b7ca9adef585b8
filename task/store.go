package task

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Store owns an ordered list of tasks.
//
// Positions passed to Store methods are 1-based and refer to the current
// list order, which changes after Sort and Delete. A Store is not safe for
// concurrent use.
type Store struct {
	path    string
	tasks   []Task
	logger  *slog.Logger
	loadErr error
}

// NewStore returns an empty store that saves to path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks in the list.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the list in current order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// AddOptions configures a new task.
type AddOptions struct {
	// Description provides additional context.
	Description string

	// Priority is the urgency rank (0-5). The zero value is the highest priority.
	Priority int

	// Status is the initial status. Defaults to StatusNotStarted.
	Status Status
}

// Add appends a new task to the end of the list.
func (s *Store) Add(title string, opts AddOptions) (Task, error) {
	t, err := New(title, opts.Description, opts.Priority, opts.Status)
	if err != nil {
		return Task{}, err
	}
	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", "title", t.Title, "description", t.Description, "position", len(s.tasks))
	return t, nil
}

// All yields every task with its 1-based position. The sequence reads the
// list lazily, so it reflects the order at the time of iteration.
func (s *Store) All() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range s.tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// View returns the list as position/task pairs. It fails with ErrEmptyList
// when there is nothing to show.
func (s *Store) View() (iter.Seq2[int, Task], error) {
	if len(s.tasks) == 0 {
		return nil, ErrEmptyList
	}
	return s.All(), nil
}

// Get returns the task at position.
func (s *Store) Get(position int) (Task, error) {
	if err := ValidatePosition(position, len(s.tasks)); err != nil {
		return Task{}, err
	}
	return s.tasks[position-1], nil
}

// Sort orders the list by priority. Tasks with equal priority keep their
// relative order.
func (s *Store) Sort(direction Direction) error {
	if len(s.tasks) == 0 {
		return ErrEmptyList
	}

	var compare func(a, b Task) int
	switch direction {
	case Ascending:
		compare = func(a, b Task) int { return cmp.Compare(a.Priority, b.Priority) }
	case Descending:
		compare = func(a, b Task) int { return cmp.Compare(b.Priority, a.Priority) }
	default:
		return fmt.Errorf("%w: unknown sort direction %d", ErrValidation, int(direction))
	}

	slices.SortStableFunc(s.tasks, compare)
	s.logger.Debug("tasks sorted", "direction", direction.String(), "count", len(s.tasks))
	return nil
}

// MarkDone marks the task at position as done.
func (s *Store) MarkDone(position int) (Task, error) {
	if err := ValidatePosition(position, len(s.tasks)); err != nil {
		return Task{}, err
	}
	t := &s.tasks[position-1]
	t.MarkDone()
	s.logger.Debug("task marked done", "position", position)
	return *t, nil
}

// ChangePriority sets the priority of the task at position.
func (s *Store) ChangePriority(position, priority int) (Task, error) {
	if err := ValidatePosition(position, len(s.tasks)); err != nil {
		return Task{}, err
	}
	t := &s.tasks[position-1]
	if err := t.UpdatePriority(priority); err != nil {
		return Task{}, err
	}
	s.logger.Debug("task priority changed", "position", position, "priority", priority)
	return *t, nil
}

// Delete removes the task at position when confirmed is true. Later tasks
// move up one position. When confirmed is false the list is left alone and
// Delete reports false.
func (s *Store) Delete(position int, confirmed bool) (bool, error) {
	if err := ValidatePosition(position, len(s.tasks)); err != nil {
		return false, err
	}
	if !confirmed {
		s.logger.Debug("task deletion skipped", "position", position)
		return false, nil
	}
	s.tasks = slices.Delete(s.tasks, position-1, position)
	s.logger.Debug("task deleted", "position", position, "remaining", len(s.tasks))
	return true, nil
}
