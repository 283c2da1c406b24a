package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aduverger/tasktrack/internal/config"
	internalstrings "github.com/aduverger/tasktrack/internal/strings"
	"github.com/aduverger/tasktrack/task"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// now is the clock used for audit timestamps.
var now = time.Now

const defaultTaskFile = "tasks.txt"

// resolvePaths picks the task file and history log for this invocation:
// flag first, then tasktrack.toml, then the defaults.
func resolvePaths() (string, string, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return "", "", nil, err
	}

	taskFile := taskFileFlag
	if taskFile == "" {
		taskFile = cfg.Tasks.File
	}
	if taskFile == "" {
		taskFile = defaultTaskFile
	}

	historyFile := historyFileFlag
	if historyFile == "" {
		historyFile = cfg.Tasks.History
	}
	if historyFile == "" {
		historyFile = taskFile + ".history"
	}

	return taskFile, historyFile, cfg, nil
}

// readTaskLines returns the raw lines of the task file and whether the
// file exists. A missing file is not an error; the callers decide what
// that means per command.
func readTaskLines(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read task file: %w", err)
	}
	return strings.Split(string(data), "\n"), true, nil
}

// writeStore rewrites the whole task file from the store.
func writeStore(path string, store task.Store) error {
	var builder strings.Builder
	for _, line := range store.Lines() {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// appendHistory appends one audit entry to the history log.
func appendHistory(path string, entry task.AuditEntry) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}

	_, werr := fmt.Fprintln(f, entry.String())
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append history entry: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close history log: %w", cerr)
	}
	return nil
}

func printNotices(result task.Result) {
	for _, notice := range result.Notices {
		fmt.Println(notice)
	}
}

func printNotFound(id string) {
	fmt.Printf("Error: task id %s not found.\n", id)
}

func printMissingFile(path string) {
	fmt.Printf("Error: the file %s was not found.\n", path)
}

func interactiveStdin() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func runAdd(cmd *cobra.Command, args []string) error {
	taskFile, historyFile, cfg, err := resolvePaths()
	if err != nil {
		return err
	}

	// A missing file just means an empty store; add creates it.
	lines, _, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	store := task.ParseLines(lines)

	status := internalstrings.NormalizeLowerTrimSpace(addStatus)
	if status == "" {
		status = internalstrings.NormalizeLowerTrimSpace(cfg.Tasks.DefaultStatus)
	}

	opts := task.CreateOptions{
		Labels: addLabels,
		Status: task.Status(status),
	}
	if interactiveStdin() {
		opts.Prompter = task.StdioPrompter{}
	}

	updated, result, err := store.Create(strings.Join(args, " "), opts)
	if errors.Is(err, task.ErrCanceled) {
		fmt.Println("Operation canceled.")
		return nil
	}
	if err != nil {
		return err
	}

	printNotices(result)
	if err := writeStore(taskFile, updated); err != nil {
		return err
	}
	if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionAdded, Task: result.Task, At: now()}); err != nil {
		return err
	}

	fmt.Printf("Successfully added task %d (%s: %s)\n", result.Task.ID, result.Task.Description, result.Task.LabelList())
	return nil
}

func runModify(cmd *cobra.Command, args []string) error {
	id := args[0]

	var description *string
	if len(args) > 1 {
		joined := strings.Join(args[1:], " ")
		description = &joined
	}

	var status *task.Status
	if cmd.Flags().Changed("status") {
		normalized := task.Status(internalstrings.NormalizeLowerTrimSpace(modifyStatus))
		status = &normalized
	}

	if description == nil && status == nil {
		fmt.Println("Error: nothing to modify, provide a description or --status.")
		return nil
	}

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result := store.Modify(id, task.ModifyOptions{Description: description, Status: status})
	if !result.Found {
		printNotFound(id)
		return nil
	}

	printNotices(result)
	if !result.Changed {
		fmt.Println("No changes were made to the task.")
		return nil
	}

	if err := writeStore(taskFile, updated); err != nil {
		return err
	}
	if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionModified, Task: result.Prior, At: now()}); err != nil {
		return err
	}

	fmt.Printf("Task %s modified.\n", id)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result := store.Remove(id)
	if !result.Found {
		printNotFound(id)
		return nil
	}

	if err := writeStore(taskFile, updated); err != nil {
		return err
	}
	if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionRemoved, Task: result.Prior, At: now()}); err != nil {
		return err
	}

	fmt.Printf("Task %s removed.\n", id)
	return nil
}

func runAddOptions(cmd *cobra.Command, args []string) error {
	id := args[0]

	var dependency *int
	if cmd.Flags().Changed("dependency") {
		dependency = task.DependencyPtr(optionDependency)
	}

	if len(optionLabels) == 0 && dependency == nil {
		fmt.Println("Error: nothing to add, provide --label or --dependency.")
		return nil
	}

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result, err := store.AddOptions(id, task.Options{Labels: optionLabels, DependsOn: dependency}, task.StdioPrompter{})
	if errors.Is(err, task.ErrCanceled) {
		fmt.Println("Operation canceled.")
		return nil
	}
	if err != nil {
		return err
	}
	if !result.Found {
		printNotFound(id)
		return nil
	}

	printNotices(result)
	if !result.Changed {
		fmt.Println("No changes were made to the task.")
		return nil
	}

	if err := writeStore(taskFile, updated); err != nil {
		return err
	}
	if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionOptionsAdded, Task: result.Prior, At: now()}); err != nil {
		return err
	}

	fmt.Println("Options added successfully.")
	return nil
}

func runRemoveLabel(cmd *cobra.Command, args []string) error {
	id := args[0]

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result, err := store.RemoveLabel(id, task.StdioPrompter{})
	if errors.Is(err, task.ErrCanceled) {
		fmt.Println("Operation canceled, no label removed.")
		return nil
	}
	if err != nil {
		return err
	}
	if !result.Found {
		printNotFound(id)
		return nil
	}

	printNotices(result)
	if !result.Changed {
		return nil
	}

	if err := writeStore(taskFile, updated); err != nil {
		return err
	}
	if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionLabelRemoved, Task: result.Prior, At: now()}); err != nil {
		return err
	}

	fmt.Println("Label removed successfully.")
	return nil
}

func runClearLabels(cmd *cobra.Command, args []string) error {
	id := args[0]

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result := store.ClearLabels(id)
	if !result.Found {
		printNotFound(id)
		return nil
	}

	if result.Changed {
		if err := writeStore(taskFile, updated); err != nil {
			return err
		}
		if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionLabelsCleared, Task: result.Prior, At: now()}); err != nil {
			return err
		}
	}

	fmt.Println("All labels removed successfully.")
	return nil
}

func runRemoveDependency(cmd *cobra.Command, args []string) error {
	id := args[0]

	taskFile, historyFile, _, err := resolvePaths()
	if err != nil {
		return err
	}
	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		printMissingFile(taskFile)
		return nil
	}

	store := task.ParseLines(lines)
	updated, result := store.RemoveDependency(id)
	if !result.Found {
		printNotFound(id)
		return nil
	}

	if result.Changed {
		if err := writeStore(taskFile, updated); err != nil {
			return err
		}
		if err := appendHistory(historyFile, task.AuditEntry{Action: task.ActionDependencyRemoved, Task: result.Prior, At: now()}); err != nil {
			return err
		}
	}

	fmt.Println("Dependence removed successfully.")
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	taskFile, _, _, err := resolvePaths()
	if err != nil {
		return err
	}

	lines, exists, err := readTaskLines(taskFile)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Println("No tasks found.")
		return nil
	}

	printTaskTable(task.ParseLines(lines))
	return nil
}
