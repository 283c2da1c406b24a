package task

import (
	"fmt"
	"strings"
)

// Result reports the outcome of a store mutation.
type Result struct {
	// Found is false when the target id is non-numeric or matches no task.
	// The caller must not persist the store when Found is false.
	Found bool

	// Changed is true when the mutation altered the store. Mutations
	// that change nothing are not persisted and not audited.
	Changed bool

	// Task is the post-mutation record.
	Task Task

	// Prior is the pre-mutation snapshot, used for audit logging. It is
	// the zero Task for Create and when Found is false.
	Prior Task

	// Notices are user-facing warnings accumulated during the mutation.
	Notices []string
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Labels are the initial labels, normalized and deduplicated.
	Labels []string

	// Status is the requested initial status. Empty means the default;
	// an invalid value falls back to the default with a warning.
	Status Status

	// Prompter, when non-nil and the store is non-empty, is used to
	// offer the operator a dependency on an existing task.
	Prompter Prompter
}

// Create appends a new task with id max(existing ids)+1, or 1 for an
// empty store. When the chosen dependency is not completed and the
// requested status is started or completed, the new task is downgraded
// to suspended with a notice. A prompt abort abandons the whole create
// and returns ErrCanceled with the store unchanged.
func (s Store) Create(description string, opts CreateOptions) (Store, Result, error) {
	result := Result{Found: true, Changed: true}

	status := opts.Status
	switch {
	case status == "":
		status = StatusSuspended
	case !status.IsValid():
		result.Notices = append(result.Notices, fmt.Sprintf("Invalid status %q, using %q instead.", string(opts.Status), string(StatusSuspended)))
		status = StatusSuspended
	}

	created := Task{
		ID:          s.NextID(),
		Description: sanitizeDescription(description),
		Labels:      sanitizeLabels(opts.Labels),
		Status:      status,
	}

	if !s.Empty() && opts.Prompter != nil {
		dep, gated, notices, err := s.promptDependency(status, opts.Prompter)
		if err != nil {
			return s, Result{}, err
		}
		created.DependsOn = dep
		created.Status = gated
		result.Notices = append(result.Notices, notices...)
	}

	result.Task = created.clone()
	return s.withAppended(created), result, nil
}

// promptDependency offers a dependency on an existing task, reprompting
// until the operator names a real task or declines.
func (s Store) promptDependency(requested Status, prompter Prompter) (*int, Status, []string, error) {
	wants, err := prompter.Confirm("Does this task depend on another task?")
	if err != nil {
		return nil, requested, nil, err
	}
	if !wants {
		return nil, requested, nil, nil
	}

	message := s.taskListing() + "Which task does it depend on? "
	for {
		answer, err := prompter.Ask(message)
		if err != nil {
			return nil, requested, nil, err
		}

		dep, ok := ParseID(answer)
		if !ok {
			message = "Please enter a valid number. Which task does it depend on? "
			continue
		}

		parent, exists := s.Get(dep)
		if !exists {
			message = fmt.Sprintf("Task %d does not exist. Which task does it depend on? ", dep)
			continue
		}

		var notices []string
		status := requested
		if status.Active() && parent.Status != StatusCompleted {
			notices = append(notices, fmt.Sprintf("Task %d is not completed (status %s); the new task will be suspended.", parent.ID, parent.Status))
			status = StatusSuspended
		}
		return &dep, status, notices, nil
	}
}

func (s Store) taskListing() string {
	var builder strings.Builder
	builder.WriteString("Existing tasks:\n")
	for _, t := range s.tasks {
		fmt.Fprintf(&builder, "%d: %s (%s)\n", t.ID, t.Description, t.Status)
	}
	return builder.String()
}

// ModifyOptions configures fields to change on a task.
// Nil pointers mean "leave this field alone".
type ModifyOptions struct {
	Description *string
	Status      *Status
}

// Modify updates the description and/or status of the task with the
// given id. An invalid status leaves the status unchanged with a
// warning; a status of started or completed is rejected while the
// task's dependency is not completed. The description change, when
// given, applies either way.
func (s Store) Modify(id string, opts ModifyOptions) (Store, Result) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}
	}

	prior := s.tasks[index].clone()
	updated := prior.clone()
	result := Result{Found: true, Prior: prior}

	if opts.Status != nil {
		switch {
		case !opts.Status.IsValid():
			result.Notices = append(result.Notices, fmt.Sprintf("Invalid status %q, status left unchanged.", string(*opts.Status)))
		case opts.Status.Active() && updated.DependsOn != nil:
			// A dangling dependency (the parent was removed) does not
			// block the transition.
			parent, exists := s.Get(*updated.DependsOn)
			if exists && parent.Status != StatusCompleted {
				result.Notices = append(result.Notices, fmt.Sprintf("Task %d depends on task %d, which is not completed; status left unchanged.", taskID, parent.ID))
			} else {
				updated.Status = *opts.Status
			}
		default:
			updated.Status = *opts.Status
		}
	}

	if opts.Description != nil {
		updated.Description = sanitizeDescription(*opts.Description)
	}

	result.Task = updated.clone()
	if updated.Equal(prior) {
		return s, result
	}

	result.Changed = true
	return s.withTask(index, updated), result
}

// Remove deletes the task with the given id. The ids of the remaining
// tasks are never renumbered.
func (s Store) Remove(id string) (Store, Result) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}
	}

	prior := s.tasks[index].clone()
	return s.without(index), Result{Found: true, Changed: true, Prior: prior, Task: prior}
}

// Options carries the optional attributes AddOptions can attach.
type Options struct {
	// Labels are merged into the task's label set, first-seen wins.
	Labels []string

	// DependsOn sets the task's dependency. When the task already has
	// one, the operator is asked whether to overwrite it.
	DependsOn *int
}

// AddOptions merges labels into a task and/or sets its dependency.
// Dependency cycles are not detected; a chain may loop back on itself.
func (s Store) AddOptions(id string, opts Options, prompter Prompter) (Store, Result, error) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}, nil
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}, nil
	}

	prior := s.tasks[index].clone()
	updated := prior.clone()
	result := Result{Found: true, Prior: prior}

	for _, label := range sanitizeLabels(opts.Labels) {
		if updated.HasLabel(label) {
			continue
		}
		updated.Labels = append(updated.Labels, label)
	}

	if opts.DependsOn != nil {
		dep := *opts.DependsOn
		if updated.DependsOn != nil {
			overwrite := true
			if prompter != nil {
				var err error
				overwrite, err = prompter.Confirm(fmt.Sprintf("Task %d already depends on task %d. Overwrite the dependency?", taskID, *updated.DependsOn))
				if err != nil {
					return s, Result{}, err
				}
			}
			if overwrite {
				updated.DependsOn = &dep
			}
		} else {
			updated.DependsOn = &dep
		}
	}

	result.Task = updated.clone()
	if updated.Equal(prior) {
		return s, result, nil
	}

	result.Changed = true
	return s.withTask(index, updated), result, nil
}

// RemoveLabel asks the operator which label to remove, by index from 0.
// Invalid input reprompts; an abort leaves the store unchanged and
// returns ErrCanceled. A task without labels is a successful no-op.
func (s Store) RemoveLabel(id string, prompter Prompter) (Store, Result, error) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}, nil
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}, nil
	}

	prior := s.tasks[index].clone()
	if len(prior.Labels) == 0 {
		return s, Result{
			Found:   true,
			Prior:   prior,
			Task:    prior,
			Notices: []string{fmt.Sprintf("Task %d has no labels to remove.", taskID)},
		}, nil
	}

	if prompter == nil {
		return s, Result{}, ErrCanceled
	}

	var listing strings.Builder
	fmt.Fprintf(&listing, "Labels of task %d:\n", taskID)
	for i, label := range prior.Labels {
		fmt.Fprintf(&listing, "%d: %s\n", i, label)
	}

	message := listing.String() + "Which label should be removed? "
	for {
		answer, err := prompter.Ask(message)
		if err != nil {
			return s, Result{}, err
		}

		n, ok := ParseID(answer)
		if !ok {
			message = "Please enter a valid number. Which label should be removed? "
			continue
		}
		if n < 0 || n >= len(prior.Labels) {
			message = fmt.Sprintf("The number must be between 0 and %d. Which label should be removed? ", len(prior.Labels)-1)
			continue
		}

		updated := prior.clone()
		updated.Labels = append(updated.Labels[:n], updated.Labels[n+1:]...)
		return s.withTask(index, updated), Result{Found: true, Changed: true, Prior: prior, Task: updated.clone()}, nil
	}
}

// ClearLabels empties the task's label set.
func (s Store) ClearLabels(id string) (Store, Result) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}
	}

	prior := s.tasks[index].clone()
	updated := prior.clone()
	updated.Labels = nil

	result := Result{Found: true, Prior: prior, Task: updated}
	if len(prior.Labels) == 0 {
		return s, result
	}

	result.Changed = true
	return s.withTask(index, updated), result
}

// RemoveDependency unsets the task's dependency.
func (s Store) RemoveDependency(id string) (Store, Result) {
	taskID, ok := ParseID(id)
	if !ok {
		return s, Result{}
	}
	index, ok := s.find(taskID)
	if !ok {
		return s, Result{}
	}

	prior := s.tasks[index].clone()
	updated := prior.clone()
	updated.DependsOn = nil

	result := Result{Found: true, Prior: prior, Task: updated}
	if prior.DependsOn == nil {
		return s, result
	}

	result.Changed = true
	return s.withTask(index, updated), result
}
