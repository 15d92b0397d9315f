package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/headless/internal/ui"
	"github.com/muurk/headless/internal/version"
)

// Application branding constants
const (
	AppName = "HEADLESS ENGINES DEMO"
)

// Layout constants
const (
	margin         = 2  // Left margin of every section
	minTrackLength = 10 // Shortest slider track
	maxTrackLength = 60 // Longest slider track
	defaultWidth   = 80 // Used until the first WindowSizeMsg
	defaultHeight  = 24
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Bold(true)

	focusedSectionStyle = lipgloss.NewStyle().
				Foreground(ui.WarningColor).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)
)

// renderHeader creates the one-line header with app name and version
func renderHeader() string {
	left := titleStyle.Render(AppName)
	right := footerStyle.Render("v" + version.Version)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func renderSectionTitle(title string, focused bool) string {
	if focused {
		return focusedSectionStyle.Render(ui.FocusGlyph + " " + title)
	}
	return sectionStyle.Render("  " + title)
}

// indent shifts every line of block right by the section margin.
func indent(block string) string {
	pad := strings.Repeat(" ", margin)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// renderContainer places content at the top-left of the terminal and pins
// the footer to the bottom. Nothing is drawn to the left of or above the
// content, so content coordinates equal terminal coordinates.
func renderContainer(content, footer string, width, height int) string {
	footer = footerStyle.Render(footer)
	gap := height - lipgloss.Height(content) - lipgloss.Height(footer)
	if gap < 1 {
		gap = 1
	}
	body := content + strings.Repeat("\n", gap) + footer
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, body)
}

func trackLength(width int) int {
	n := width - 2*margin - 8
	if n < minTrackLength {
		return minTrackLength
	}
	if n > maxTrackLength {
		return maxTrackLength
	}
	return n
}
