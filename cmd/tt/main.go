// Package main implements the tt CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tt",
	Short:         "Tasktrack - a flat-file task tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
}
