package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/cubetimer/internal/timer"
)

func renderHeader(state timer.State, count int, backend string, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("cubetimer")

	solves := "no solves"
	if count == 1 {
		solves = "1 solve"
	} else if count > 1 {
		solves = fmt.Sprintf("%d solves", count)
	}

	left := fmt.Sprintf(" %s %s  %s", dot, name, hintStyle.Render(solves+" · "+backend))
	right := renderTimerBadge(state) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTimerBadge(state timer.State) string {
	if state == timer.Running {
		return badgeRunningStyle.Render("● Running")
	}
	return badgeIdleStyle.Render("● Idle")
}
