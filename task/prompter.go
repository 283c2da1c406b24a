package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCanceled is returned when the operator aborts an interactive
// prompt. The whole in-progress operation is abandoned and nothing is
// persisted.
var ErrCanceled = errors.New("operation canceled")

// Prompter asks the operator for the decisions some mutations need.
// Implementations return ErrCanceled when the operator aborts instead
// of answering.
type Prompter interface {
	// Confirm asks a yes/no question and returns true if the answer is yes.
	Confirm(message string) (bool, error)

	// Ask prints a message and returns one line of operator input.
	Ask(message string) (string, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks a yes/no question via stdin/stdout, reprompting until
// the answer is recognizable.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	for {
		fmt.Printf("%s [y/n]: ", message)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			return false, ErrCanceled
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n.")
	}
}

// Ask prints the message and reads one response token from stdin.
func (p StdioPrompter) Ask(message string) (string, error) {
	fmt.Print(message)
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return "", ErrCanceled
	}
	return response, nil
}
