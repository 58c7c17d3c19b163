package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone = 0
	overlayHelp = 1
)

// renderOverlay renders an overlay centered on top of the base view.
func renderOverlay(base, overlayContent string, width, height int) string {
	// Dim the background
	baseLines := strings.Split(base, "\n")
	for i, line := range baseLines {
		baseLines[i] = overlayDimStyle.Render(ansi.Strip(line))
	}

	overlayLines := strings.Split(overlayContent, "\n")
	overlayWidth := 0
	for _, l := range overlayLines {
		if w := lipgloss.Width(l); w > overlayWidth {
			overlayWidth = w
		}
	}

	top := max((height-len(overlayLines))/2, 1)
	left := max((width-overlayWidth)/2, 1)

	// Place overlay on top of dimmed background using ANSI-aware slicing
	for i, line := range overlayLines {
		row := top + i
		if row >= len(baseLines) {
			continue
		}
		bg := baseLines[row]
		bgWidth := lipgloss.Width(bg)

		leftPart := ansi.Truncate(bg, left, "")
		if w := lipgloss.Width(leftPart); w < left {
			leftPart += strings.Repeat(" ", left-w)
		}

		rightPart := ""
		if rightStart := left + lipgloss.Width(line); rightStart < bgWidth {
			rightPart = ansi.Cut(bg, rightStart, bgWidth)
		}

		baseLines[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}

	return strings.Join(baseLines, "\n")
}
