// Package input provides interactive terminal prompts.
//
// The new command uses it to ask for values that were not supplied on the
// command line, and only when stdin is attached to a terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name := input.Prompt("Element name", "my-element")
//	// Displays: Element name (my-element): _
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(stdin)

	if defaultValue != "" {
		fmt.Fprint(stdout, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(stdout, promptStyle.Render(message)+": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}

	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers y or yes (any case).
// An empty answer returns defaultYes.
//
// Example:
//
//	if input.Confirm("Directory exists. Continue?", false) {
//	    // overwrite
//	}
//	// Displays: Directory exists. Continue? [y/N]: _
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(stdout, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}

	return line == "y" || line == "yes"
}
