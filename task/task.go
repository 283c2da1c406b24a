package task

import (
	"fmt"
	"strconv"
	"strings"
)

// noneField is the placeholder written for an empty label set or an
// unset dependency.
const noneField = "None"

// Task represents a single task record.
type Task struct {
	// ID is a unique positive integer, immutable once assigned.
	ID int

	// Description is the free-text summary of the task.
	Description string

	// Labels are free-text tags in insertion order, without duplicates.
	Labels []string

	// Status is the current state of the task.
	Status Status

	// DependsOn is the id of the task this task depends on, or nil.
	DependsOn *int
}

// Line serializes the task into its on-disk form, without a trailing
// newline. It round-trips exactly through ParseLines.
func (t Task) Line() string {
	return fmt.Sprintf("%d;%s;%s;%s;%s", t.ID, t.Description, t.labelField(), t.Status, t.dependencyField())
}

func (t Task) labelField() string {
	if len(t.Labels) == 0 {
		return noneField
	}
	return strings.Join(t.Labels, ",")
}

func (t Task) dependencyField() string {
	if t.DependsOn == nil {
		return noneField
	}
	return strconv.Itoa(*t.DependsOn)
}

// LabelList returns the labels joined for display, or "None".
func (t Task) LabelList() string {
	if len(t.Labels) == 0 {
		return noneField
	}
	return strings.Join(t.Labels, ", ")
}

// DependencyName returns the dependency id for display, or "None".
func (t Task) DependencyName() string {
	return t.dependencyField()
}

// HasLabel returns true when the task already carries the label.
func (t Task) HasLabel(label string) bool {
	for _, existing := range t.Labels {
		if existing == label {
			return true
		}
	}
	return false
}

// Equal compares two tasks field by field.
func (t Task) Equal(other Task) bool {
	if t.ID != other.ID || t.Description != other.Description || t.Status != other.Status {
		return false
	}
	if (t.DependsOn == nil) != (other.DependsOn == nil) {
		return false
	}
	if t.DependsOn != nil && *t.DependsOn != *other.DependsOn {
		return false
	}
	if len(t.Labels) != len(other.Labels) {
		return false
	}
	for i := range t.Labels {
		if t.Labels[i] != other.Labels[i] {
			return false
		}
	}
	return true
}

// clone returns a deep copy so mutations never alias a caller's labels.
func (t Task) clone() Task {
	copied := t
	if t.Labels != nil {
		copied.Labels = append([]string(nil), t.Labels...)
	}
	if t.DependsOn != nil {
		dep := *t.DependsOn
		copied.DependsOn = &dep
	}
	return copied
}

// DependencyPtr returns a pointer to the provided task id.
func DependencyPtr(id int) *int {
	return &id
}
