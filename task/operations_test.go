package task

import (
	"errors"
	"strings"
	"testing"
)

func TestStore_Create_EmptyStore(t *testing.T) {
	store := ParseLines(nil)

	updated, result, err := store.Create("Buy milk", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if result.Task.ID != 1 {
		t.Errorf("expected id 1, got %d", result.Task.ID)
	}
	if result.Task.Status != StatusSuspended {
		t.Errorf("expected status 'suspended', got %q", result.Task.Status)
	}
	if result.Task.DependsOn != nil {
		t.Errorf("expected no dependency, got %d", *result.Task.DependsOn)
	}

	assertLines(t, updated, "1;Buy milk;None;suspended;None")
}

func TestStore_Create_AssignsMaxPlusOne(t *testing.T) {
	// Gaps are never refilled: after removing below the max, the next
	// id still counts up from the max.
	store := parseStore(t, "1;First", "5;Fifth", "3;Third")

	_, result, err := store.Create("Next", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if result.Task.ID != 6 {
		t.Errorf("expected id 6, got %d", result.Task.ID)
	}
}

func TestStore_Create_IDAfterRemovingMax(t *testing.T) {
	// Ids derive from the current max, so removing the highest task
	// frees its id for the next create.
	store := parseStore(t, "1;First", "2;Second")

	store, result := store.Remove("2")
	if !result.Found {
		t.Fatal("expected remove to find task 2")
	}

	_, created, err := store.Create("Third", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if created.Task.ID != 2 {
		t.Errorf("expected id 2, got %d", created.Task.ID)
	}
}

func TestStore_Create_WithLabelsAndStatus(t *testing.T) {
	store := ParseLines(nil)

	_, result, err := store.Create("Walk dog", CreateOptions{
		Labels: []string{"outside", "daily"},
		Status: StatusStarted,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if result.Task.Status != StatusStarted {
		t.Errorf("expected status 'started', got %q", result.Task.Status)
	}
	if len(result.Task.Labels) != 2 {
		t.Errorf("expected 2 labels, got %v", result.Task.Labels)
	}
}

func TestStore_Create_InvalidStatusFallsBack(t *testing.T) {
	store := ParseLines(nil)

	_, result, err := store.Create("Task", CreateOptions{Status: "urgentish"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if result.Task.Status != StatusSuspended {
		t.Errorf("expected fallback to 'suspended', got %q", result.Task.Status)
	}
	if len(result.Notices) != 1 || !strings.Contains(result.Notices[0], "urgentish") {
		t.Errorf("expected an invalid-status notice, got %v", result.Notices)
	}
}

func TestStore_Create_DuplicateLabelsCollapse(t *testing.T) {
	store := ParseLines(nil)

	_, result, err := store.Create("Task", CreateOptions{Labels: []string{"urgent", "urgent", "", "later"}})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if len(result.Task.Labels) != 2 || result.Task.Labels[0] != "urgent" || result.Task.Labels[1] != "later" {
		t.Errorf("expected labels [urgent later], got %v", result.Task.Labels)
	}
}

func TestStore_Create_SanitizesDescription(t *testing.T) {
	store := ParseLines(nil)

	updated, result, err := store.Create("Buy; milk\nand   eggs", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if result.Task.Description != "Buy, milk and eggs" {
		t.Errorf("unexpected sanitized description %q", result.Task.Description)
	}

	// The sanitized record must survive a rewrite.
	reparsed := ParseLines(updated.Lines())
	roundTripped, _ := reparsed.Get(result.Task.ID)
	if !roundTripped.Equal(result.Task) {
		t.Errorf("sanitized record did not round trip: %q", result.Task.Line())
	}
}

func TestStore_Create_DependencyOnCompletedTaskKeepsStatus(t *testing.T) {
	store := parseStore(t, "1;Parent;None;completed;None")

	prompter := &scriptedPrompter{confirms: []bool{true}, answers: []string{"1"}}
	updated, result, err := store.Create("Child", CreateOptions{Status: StatusStarted, Prompter: prompter})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if result.Task.Status != StatusStarted {
		t.Errorf("expected status 'started' to survive, got %q", result.Task.Status)
	}
	if result.Task.DependsOn == nil || *result.Task.DependsOn != 1 {
		t.Errorf("expected dependency 1, got %v", result.Task.DependsOn)
	}
	if updated.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", updated.Len())
	}
}

func TestStore_Create_DependencyNotCompletedForcesSuspended(t *testing.T) {
	store := parseStore(t, "1;Parent;None;suspended;None")

	prompter := &scriptedPrompter{confirms: []bool{true}, answers: []string{"1"}}
	_, result, err := store.Create("Child", CreateOptions{Status: StatusStarted, Prompter: prompter})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if result.Task.Status != StatusSuspended {
		t.Errorf("expected forced 'suspended', got %q", result.Task.Status)
	}
	if len(result.Notices) != 1 {
		t.Errorf("expected a downgrade notice, got %v", result.Notices)
	}
}

func TestStore_Create_DependencyPromptRepromptsOnBadInput(t *testing.T) {
	store := parseStore(t, "1;Parent;None;completed;None")

	// A non-numeric answer and a nonexistent id both reprompt.
	prompter := &scriptedPrompter{confirms: []bool{true}, answers: []string{"x", "9", "1"}}
	_, result, err := store.Create("Child", CreateOptions{Prompter: prompter})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if result.Task.DependsOn == nil || *result.Task.DependsOn != 1 {
		t.Errorf("expected dependency 1 after reprompts, got %v", result.Task.DependsOn)
	}
}

func TestStore_Create_DeclinedDependency(t *testing.T) {
	store := parseStore(t, "1;Parent;None;suspended;None")

	prompter := &scriptedPrompter{confirms: []bool{false}}
	_, result, err := store.Create("Child", CreateOptions{Status: StatusStarted, Prompter: prompter})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if result.Task.DependsOn != nil {
		t.Errorf("expected no dependency, got %d", *result.Task.DependsOn)
	}
	if result.Task.Status != StatusStarted {
		t.Errorf("expected requested status to stand, got %q", result.Task.Status)
	}
}

func TestStore_Create_CancelAbandonsCreate(t *testing.T) {
	store := parseStore(t, "1;Parent;None;suspended;None")

	// The script runs dry mid-flow, which reads as an operator abort.
	prompter := &scriptedPrompter{confirms: []bool{true}}
	updated, _, err := store.Create("Child", CreateOptions{Prompter: prompter})
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	assertLines(t, updated, "1;Parent;None;suspended;None")
}

func TestStore_Create_NilPrompterSkipsDependencyOffer(t *testing.T) {
	store := parseStore(t, "1;Parent;None;suspended;None")

	_, result, err := store.Create("Child", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if result.Task.DependsOn != nil {
		t.Errorf("expected no dependency without a prompter, got %d", *result.Task.DependsOn)
	}
}

func TestStore_Modify_Description(t *testing.T) {
	store := parseStore(t, "1;Old;None;suspended;None")

	description := "New description"
	updated, result := store.Modify("1", ModifyOptions{Description: &description})
	if !result.Found {
		t.Fatal("expected task 1 to be found")
	}
	if !result.Changed {
		t.Fatal("expected the modification to register as a change")
	}
	if result.Prior.Description != "Old" {
		t.Errorf("expected prior snapshot to keep the old description, got %q", result.Prior.Description)
	}

	assertLines(t, updated, "1;New description;None;suspended;None")
}

func TestStore_Modify_Status(t *testing.T) {
	store := parseStore(t, "1;Task;None;suspended;None")

	status := StatusCompleted
	updated, result := store.Modify("1", ModifyOptions{Status: &status})
	if !result.Changed {
		t.Fatal("expected a change")
	}
	assertLines(t, updated, "1;Task;None;completed;None")
}

func TestStore_Modify_InvalidStatusKeepsOldStatus(t *testing.T) {
	store := parseStore(t, "1;Task;None;started;None")

	status := Status("bogus")
	description := "Renamed"
	updated, result := store.Modify("1", ModifyOptions{Description: &description, Status: &status})
	if !result.Found || !result.Changed {
		t.Fatal("expected the description change to apply")
	}
	if len(result.Notices) != 1 {
		t.Errorf("expected an invalid-status notice, got %v", result.Notices)
	}

	assertLines(t, updated, "1;Renamed;None;started;None")
}

func TestStore_Modify_DependencyGateBlocksStatus(t *testing.T) {
	store := parseStore(t,
		"1;Parent;None;suspended;None",
		"2;Child;None;suspended;1",
	)

	status := StatusStarted
	description := "Child renamed"
	updated, result := store.Modify("2", ModifyOptions{Description: &description, Status: &status})
	if !result.Found || !result.Changed {
		t.Fatal("expected the description change to apply despite the gate")
	}
	if result.Task.Status != StatusSuspended {
		t.Errorf("expected status left at 'suspended', got %q", result.Task.Status)
	}
	if len(result.Notices) != 1 || !strings.Contains(result.Notices[0], "not completed") {
		t.Errorf("expected a dependency-gate notice, got %v", result.Notices)
	}

	child, _ := updated.Get(2)
	if child.Description != "Child renamed" {
		t.Errorf("expected renamed child, got %q", child.Description)
	}
}

func TestStore_Modify_DependencyGateOpensWhenParentCompleted(t *testing.T) {
	store := parseStore(t,
		"1;Parent;None;completed;None",
		"2;Child;None;suspended;1",
	)

	status := StatusStarted
	_, result := store.Modify("2", ModifyOptions{Status: &status})
	if result.Task.Status != StatusStarted {
		t.Errorf("expected 'started', got %q", result.Task.Status)
	}
}

func TestStore_Modify_DanglingDependencyDoesNotBlock(t *testing.T) {
	// Task 9 was removed at some point; its id still appears as a
	// dependency but no longer gates anything.
	store := parseStore(t, "2;Child;None;suspended;9")

	status := StatusCompleted
	_, result := store.Modify("2", ModifyOptions{Status: &status})
	if result.Task.Status != StatusCompleted {
		t.Errorf("expected dangling dependency to be ignored, got %q", result.Task.Status)
	}
}

func TestStore_Modify_NoChange(t *testing.T) {
	store := parseStore(t, "1;Same;None;suspended;None")

	description := "Same"
	status := StatusSuspended
	updated, result := store.Modify("1", ModifyOptions{Description: &description, Status: &status})
	if !result.Found {
		t.Fatal("expected task 1 to be found")
	}
	if result.Changed {
		t.Error("expected no change to be reported")
	}
	assertLines(t, updated, "1;Same;None;suspended;None")
}

func TestStore_Modify_NotFound(t *testing.T) {
	store := parseStore(t, "1;Task")

	for _, id := range []string{"2", "abc", ""} {
		description := "New"
		updated, result := store.Modify(id, ModifyOptions{Description: &description})
		if result.Found {
			t.Errorf("id %q: expected not-found", id)
		}
		assertLines(t, updated, "1;Task;None;suspended;None")
	}
}

func TestStore_Remove(t *testing.T) {
	store := parseStore(t, "1;Buy milk;None;suspended;None")

	updated, result := store.Remove("1")
	if !result.Found {
		t.Fatal("expected task 1 to be removed")
	}
	if result.Prior.Description != "Buy milk" {
		t.Errorf("expected prior snapshot of the removed task, got %q", result.Prior.Description)
	}
	if !updated.Empty() {
		t.Errorf("expected empty store, got %d tasks", updated.Len())
	}

	// Removing again reports not-found on an unchanged store.
	again, result := updated.Remove("1")
	if result.Found {
		t.Error("expected second remove to report not-found")
	}
	if !again.Empty() {
		t.Errorf("expected store to stay empty, got %d tasks", again.Len())
	}
}

func TestStore_Remove_KeepsOtherIDs(t *testing.T) {
	store := parseStore(t, "1;First", "2;Second", "3;Third")

	updated, _ := store.Remove("2")
	assertLines(t, updated,
		"1;First;None;suspended;None",
		"3;Third;None;suspended;None",
	)
}

func TestStore_AddOptions_MergesLabels(t *testing.T) {
	store := parseStore(t, "1;Task;urgent;suspended;None")

	updated, result, err := store.AddOptions("1", Options{Labels: []string{"urgent", "urgent", "errand"}}, nil)
	if err != nil {
		t.Fatalf("failed to add options: %v", err)
	}
	if !result.Found || !result.Changed {
		t.Fatal("expected a label merge")
	}

	assertLines(t, updated, "1;Task;urgent,errand;suspended;None")
}

func TestStore_AddOptions_DuplicateLabelsOnEmptySet(t *testing.T) {
	store := parseStore(t, "1;Task;None;suspended;None")

	updated, _, err := store.AddOptions("1", Options{Labels: []string{"urgent", "urgent"}}, nil)
	if err != nil {
		t.Fatalf("failed to add options: %v", err)
	}
	parsed, _ := updated.Get(1)
	if len(parsed.Labels) != 1 || parsed.Labels[0] != "urgent" {
		t.Errorf("expected labels [urgent], got %v", parsed.Labels)
	}
}

func TestStore_AddOptions_SetsDependencyDirectly(t *testing.T) {
	store := parseStore(t, "1;Parent", "2;Child")

	updated, result, err := store.AddOptions("2", Options{DependsOn: DependencyPtr(1)}, nil)
	if err != nil {
		t.Fatalf("failed to add options: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected the dependency to register as a change")
	}

	child, _ := updated.Get(2)
	if child.DependsOn == nil || *child.DependsOn != 1 {
		t.Errorf("expected dependency 1, got %v", child.DependsOn)
	}
}

func TestStore_AddOptions_OverwriteDependencyConfirmed(t *testing.T) {
	store := parseStore(t, "1;A", "2;B", "3;C;None;suspended;1")

	prompter := &scriptedPrompter{confirms: []bool{true}}
	updated, result, err := store.AddOptions("3", Options{DependsOn: DependencyPtr(2)}, prompter)
	if err != nil {
		t.Fatalf("failed to add options: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected the overwrite to register as a change")
	}

	modified, _ := updated.Get(3)
	if modified.DependsOn == nil || *modified.DependsOn != 2 {
		t.Errorf("expected dependency 2, got %v", modified.DependsOn)
	}
}

func TestStore_AddOptions_OverwriteDependencyDeclined(t *testing.T) {
	store := parseStore(t, "1;A", "2;B", "3;C;None;suspended;1")

	prompter := &scriptedPrompter{confirms: []bool{false}}
	updated, result, err := store.AddOptions("3", Options{DependsOn: DependencyPtr(2)}, prompter)
	if err != nil {
		t.Fatalf("failed to add options: %v", err)
	}
	if result.Changed {
		t.Error("expected no change when the overwrite is declined")
	}

	kept, _ := updated.Get(3)
	if kept.DependsOn == nil || *kept.DependsOn != 1 {
		t.Errorf("expected dependency 1 to remain, got %v", kept.DependsOn)
	}
}

func TestStore_AddOptions_CancelDuringOverwritePrompt(t *testing.T) {
	store := parseStore(t, "1;A", "3;C;None;suspended;1")

	prompter := &scriptedPrompter{}
	updated, _, err := store.AddOptions("3", Options{DependsOn: DependencyPtr(1)}, prompter)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	kept, _ := updated.Get(3)
	if kept.DependsOn == nil || *kept.DependsOn != 1 {
		t.Errorf("expected store unchanged after cancel, got %v", kept.DependsOn)
	}
}

func TestStore_AddOptions_NotFound(t *testing.T) {
	store := parseStore(t, "1;Task")

	_, result, err := store.AddOptions("nine", Options{Labels: []string{"x"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Found {
		t.Error("expected not-found for a non-numeric id")
	}
}

func TestStore_RemoveLabel(t *testing.T) {
	store := parseStore(t, "1;Task;first,second,third;suspended;None")

	prompter := &scriptedPrompter{answers: []string{"1"}}
	updated, result, err := store.RemoveLabel("1", prompter)
	if err != nil {
		t.Fatalf("failed to remove label: %v", err)
	}
	if !result.Found || !result.Changed {
		t.Fatal("expected a label removal")
	}

	assertLines(t, updated, "1;Task;first,third;suspended;None")
}

func TestStore_RemoveLabel_RepromptsOnInvalidInput(t *testing.T) {
	store := parseStore(t, "1;Task;only;suspended;None")

	prompter := &scriptedPrompter{answers: []string{"x", "5", "0"}}
	updated, result, err := store.RemoveLabel("1", prompter)
	if err != nil {
		t.Fatalf("failed to remove label: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected the reprompted removal to land")
	}
	assertLines(t, updated, "1;Task;None;suspended;None")
}

func TestStore_RemoveLabel_NoLabelsIsNoOpSuccess(t *testing.T) {
	store := parseStore(t, "1;Task;None;suspended;None")

	updated, result, err := store.RemoveLabel("1", &scriptedPrompter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Found {
		t.Error("expected found=true for a task without labels")
	}
	if result.Changed {
		t.Error("expected no change")
	}
	if len(result.Notices) != 1 {
		t.Errorf("expected a no-labels notice, got %v", result.Notices)
	}
	assertLines(t, updated, "1;Task;None;suspended;None")
}

func TestStore_RemoveLabel_CancelLeavesStoreUnchanged(t *testing.T) {
	store := parseStore(t, "1;Task;keep;suspended;None")

	updated, _, err := store.RemoveLabel("1", &scriptedPrompter{})
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	assertLines(t, updated, "1;Task;keep;suspended;None")
}

func TestStore_ClearLabels(t *testing.T) {
	store := parseStore(t, "1;Task;a,b,c;started;2")

	updated, result := store.ClearLabels("1")
	if !result.Found || !result.Changed {
		t.Fatal("expected labels to be cleared")
	}
	assertLines(t, updated, "1;Task;None;started;2")

	// Clearing again is idempotent and reports no change.
	again, result := updated.ClearLabels("1")
	if !result.Found {
		t.Fatal("expected task 1 to still be found")
	}
	if result.Changed {
		t.Error("expected the second clear to change nothing")
	}
	assertLines(t, again, "1;Task;None;started;2")
}

func TestStore_RemoveDependency(t *testing.T) {
	store := parseStore(t, "2;Child;None;suspended;1")

	updated, result := store.RemoveDependency("2")
	if !result.Found || !result.Changed {
		t.Fatal("expected the dependency to be removed")
	}
	if result.Prior.DependsOn == nil {
		t.Error("expected prior snapshot to keep the dependency")
	}
	assertLines(t, updated, "2;Child;None;suspended;None")

	again, result := updated.RemoveDependency("2")
	if !result.Found || result.Changed {
		t.Error("expected a found no-op on a task without a dependency")
	}
	assertLines(t, again, "2;Child;None;suspended;None")
}

func TestStore_MutationsPreserveIDUniqueness(t *testing.T) {
	store := parseStore(t, "1;A", "2;B", "3;C")

	var err error
	store, _, err = store.Create("D", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	store, _ = store.Remove("2")
	store, _, err = store.Create("E", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	seen := make(map[int]bool)
	for _, item := range store.Tasks() {
		if seen[item.ID] {
			t.Fatalf("duplicate id %d", item.ID)
		}
		seen[item.ID] = true
	}
}
