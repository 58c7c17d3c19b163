package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Timer",
		keys: []helpKey{
			{"Space / Enter", "Start or stop the timer"},
			{"s", "New scramble (idle only)"},
		},
	},
	{
		title: "Times",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate times"},
			{"g / G", "First / last time"},
			{"x / Delete", "Delete selected time"},
			{"c", "Clear all times (asks first)"},
		},
	},
	{
		title: "Global",
		keys: []helpKey{
			{"?", "Toggle help"},
			{"q / Ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 56
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	lines := make([]string, 0, len(helpSections)*4+3)
	lines = append(lines, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		lines = append(lines, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(16).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			lines = append(lines, "  "+keyCol+descCol)
		}
	}

	lines = append(lines, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	return overlayStyle.Width(maxWidth).Render(strings.Join(lines, "\n"))
}
