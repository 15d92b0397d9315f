package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a warning line followed by prompt and reads one line from in.
// It returns true only for "y" or "yes", case insensitively.
func Confirm(in io.Reader, out io.Writer, warning, prompt string) bool {
	if warning != "" {
		_, _ = fmt.Fprintln(out, WarningTitleStyle.Render(WarningMarker+"  "+warning))
	}

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render(prompt+" [y/N]: "))

	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	_, _ = fmt.Fprintln(out, MutedStyle.Render("  Operation cancelled."))
	return false
}
