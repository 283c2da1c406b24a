// Package task implements a flat-file task tracker.
//
// Tasks are stored one per line in a ';'-delimited text file:
//
//	id;description;labels;status;dependency
//
// where labels is a comma-joined list (or the literal "None") and
// dependency is the id of another task (or "None"). Legacy two-field
// lines ("id;description") are still accepted on read.
//
// The public API mirrors the CLI commands:
//   - Create, Modify, Remove for the task lifecycle
//   - AddOptions, RemoveLabel, ClearLabels for label management
//   - AddOptions, RemoveDependency for dependency management
//   - Sorted for display
package task

// Status represents the state of a task.
type Status string

const (
	// StatusStarted indicates the task is being worked on.
	StatusStarted Status = "started"

	// StatusSuspended indicates the task is on hold (default).
	StatusSuspended Status = "suspended"

	// StatusCompleted indicates the task is finished.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the task was abandoned.
	StatusCancelled Status = "cancelled"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusStarted, StatusSuspended, StatusCompleted, StatusCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Active returns true when a status requires the task's dependency to be
// completed before it may be applied.
func (s Status) Active() bool {
	return s == StatusStarted || s == StatusCompleted
}
