package main

import (
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <description>...",
	Short: "Add a new task",
	Long: `Add a new task with an auto-incremented id.

When the task file already holds tasks and stdin is a terminal, add
offers to set a dependency on an existing task.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addLabels []string
	addStatus string
)

// modify
var modifyCmd = &cobra.Command{
	Use:   "modify <id> [description]...",
	Short: "Change the description and/or status of a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runModify,
}

var modifyStatus string

// rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

// add-options
var addOptionsCmd = &cobra.Command{
	Use:   "add-options <id>",
	Short: "Attach labels and/or a dependency to a task",
	Aliases: []string{
		"add_options",
	},
	Args: cobra.ExactArgs(1),
	RunE: runAddOptions,
}

var (
	optionLabels     []string
	optionDependency int
)

// rm-label
var rmLabelCmd = &cobra.Command{
	Use:   "rm-label <id>",
	Short: "Remove one label from a task, chosen interactively",
	Aliases: []string{
		"rmLabel",
	},
	Args: cobra.ExactArgs(1),
	RunE: runRemoveLabel,
}

// clear-label
var clearLabelCmd = &cobra.Command{
	Use:   "clear-label <id>",
	Short: "Remove every label from a task",
	Aliases: []string{
		"clearLabel",
	},
	Args: cobra.ExactArgs(1),
	RunE: runClearLabels,
}

// rm-dep
var rmDepCmd = &cobra.Command{
	Use:   "rm-dep <id>",
	Short: "Remove the dependency of a task",
	Aliases: []string{
		"rmDep",
	},
	Args: cobra.ExactArgs(1),
	RunE: runRemoveDependency,
}

// show
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all tasks sorted by id",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var (
	taskFileFlag    string
	historyFileFlag string
)

func init() {
	rootCmd.AddCommand(addCmd, modifyCmd, rmCmd, addOptionsCmd, rmLabelCmd, clearLabelCmd, rmDepCmd, showCmd)

	rootCmd.PersistentFlags().StringVarP(&taskFileFlag, "file", "f", "", "Task file (default from tasktrack.toml, then tasks.txt)")
	rootCmd.PersistentFlags().StringVar(&historyFileFlag, "history", "", "History log (default <file>.history)")

	// add flags
	addCmd.Flags().StringArrayVarP(&addLabels, "label", "l", nil, "Label to attach (repeatable)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Initial status (started, suspended, completed, cancelled)")

	// modify flags
	modifyCmd.Flags().StringVarP(&modifyStatus, "status", "s", "", "New status (started, suspended, completed, cancelled)")

	// add-options flags
	addOptionsCmd.Flags().StringArrayVarP(&optionLabels, "label", "l", nil, "Label to attach (repeatable)")
	addOptionsCmd.Flags().IntVar(&optionDependency, "dependency", 0, "Id of the task this task depends on")

	addLabelFlagAliases(addCmd, addOptionsCmd)
	addDependencyFlagAliases(addOptionsCmd)
}
