package main

import (
	"fmt"
	"strconv"

	"github.com/aduverger/tasktrack/internal/ui"
	"github.com/aduverger/tasktrack/task"
)

// printTaskTable prints the store as a table sorted by ascending id.
func printTaskTable(store task.Store) {
	tasks := store.Sorted()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, ui.ColorStatus))
}

func formatTaskTable(tasks []task.Task, colorStatus func(string) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "DESCRIPTION", "LABELS", "STATUS", "DEPENDENCY"}, len(tasks))

	for _, t := range tasks {
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			ui.TruncateTableCell(t.Description),
			ui.TruncateTableCell(t.LabelList()),
			colorStatus(string(t.Status)),
			t.DependencyName(),
		})
	}

	return builder.String()
}
