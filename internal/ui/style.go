package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var statusStyles = map[string]lipgloss.Style{
	"started":   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	"suspended": lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	"completed": lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	"cancelled": lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
}

// ColorStatus returns the status styled for terminal output. The input
// comes back unchanged when stdout is not a terminal or color is
// disabled.
func ColorStatus(status string) string {
	if !ansiEnabled() {
		return status
	}
	style, ok := statusStyles[status]
	if !ok {
		return status
	}
	return style.Render(status)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
