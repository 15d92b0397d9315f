package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, active items
	SuccessColor = lipgloss.Color("#43BF6D") // Green - filled track, success
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, focus ring
	MutedColor   = lipgloss.Color("#626262") // Gray - disabled, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Header and result styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(18)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Widget styles
var (
	PageStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Underline(true)

	NavControlStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	TrackFillStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	TrackRestStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ThumbStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	DisabledTabStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Strikethrough(true).
				Padding(0, 1)

	TooltipStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)
)

// Glyphs used by the widget renderers
const (
	SuccessMarker  = "✓"
	WarningMarker  = "⚠"
	FailureMarker  = "✗"
	EllipsisGlyph  = "…"
	FirstGlyph     = "«"
	PreviousGlyph  = "‹"
	NextGlyph      = "›"
	LastGlyph      = "»"
	ThumbGlyph     = "●"
	TrackFillGlyph = "━"
	TrackRestGlyph = "─"
	TrackVertFill  = "┃"
	TrackVertRest  = "│"
	FocusGlyph     = "▸"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// HeaderBorderStyle returns the border style for command headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// ResultBoxStyle returns the double border box used for results in color c
func ResultBoxStyle(width int, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(c).
		Width(width-2).
		Padding(0, 2)
}

// PanelBoxStyle returns the rounded box around a tab panel or demo section
func PanelBoxStyle(width int, focused bool) lipgloss.Style {
	border := MutedColor
	if focused {
		border = WarningColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
