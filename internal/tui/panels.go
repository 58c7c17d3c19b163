package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel indices.
const (
	panelTimes = 0
	panelTimer = 1
)

// timesPanelRatio is the share of the width given to the times list.
const timesPanelRatio = 0.3

// panelLayout holds computed dimensions for the two-panel layout.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
}

func computeLayout(width, height int) panelLayout {
	// Reserve: 1 line header, 1 line status bar
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	usable := width - 1 // 1 for divider
	leftWidth := int(float64(usable) * timesPanelRatio)
	rightWidth := usable - leftWidth

	if leftWidth < 18 {
		leftWidth = 18
	}
	if rightWidth < 10 {
		rightWidth = 10
	}

	return panelLayout{
		leftWidth:     leftWidth,
		rightWidth:    rightWidth,
		contentHeight: contentHeight,
	}
}

// innerSize returns the content area of a bordered panel.
func innerSize(outerWidth, outerHeight int) (int, int) {
	return max(outerWidth-2, 1), max(outerHeight-2, 1)
}

func renderPanels(leftContent, rightContent string, layout panelLayout, focusedPanel int) string {
	leftStyle := unfocusedBorderStyle
	rightStyle := unfocusedBorderStyle
	if focusedPanel == panelTimes {
		leftStyle = focusedBorderStyle
	} else {
		rightStyle = focusedBorderStyle
	}

	leftInner, innerHeight := innerSize(layout.leftWidth, layout.contentHeight)
	rightInner, _ := innerSize(layout.rightWidth, layout.contentHeight)

	left := leftStyle.
		Width(leftInner).
		Height(innerHeight).
		Render(truncateContent(leftContent, leftInner, innerHeight))

	right := rightStyle.
		Width(rightInner).
		Height(innerHeight).
		Render(truncateContent(rightContent, rightInner, innerHeight))

	divider := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(strings.Repeat("│\n", lipgloss.Height(left)))
	if divider != "" && divider[len(divider)-1] == '\n' {
		divider = divider[:len(divider)-1]
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

// truncateContent ensures content fits within the given dimensions.
func truncateContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if len(lines) > height {
		lines = lines[:height]
	}

	// Truncate long lines (ANSI-aware)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	return strings.Join(lines, "\n")
}
