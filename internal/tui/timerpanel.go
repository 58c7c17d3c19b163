package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/cubetimer/internal/scramble"
)

// renderTimerPanel draws the clock, the start/stop affordance and the
// current scramble with its image.
func (m Model) renderTimerPanel(width int) string {
	var sections []string

	// Clock
	clock := m.displayTime()
	if m.timer.Running() {
		sections = append(sections, clockRunningStyle.Render(clock))
		sections = append(sections, affordanceStyle.Render("Press Space to stop"))
	} else {
		sections = append(sections, clockIdleStyle.Render(clock))
		sections = append(sections, affordanceStyle.Render("Press Space to start"))
	}

	// Scramble
	sections = append(sections, "", panelTitleStyle.Render("Scramble"))
	switch {
	case m.scramble == "" && m.scramblePending:
		sections = append(sections, hintStyle.Render("Generating…"))
	case m.scramble == "":
		sections = append(sections, hintStyle.Render("No scramble"))
	default:
		sections = append(sections, scrambleStyle.Width(width).Render(m.scramble))
		sections = append(sections, "", m.renderImage(width))
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

// displayTime is the live elapsed time while running and the most recent
// result when idle.
func (m Model) displayTime() string {
	if m.timer.Running() {
		return formatClock(m.timer.Elapsed().Milliseconds())
	}
	if m.lastRecord != "" {
		return string(m.lastRecord)
	}
	return "0.00"
}

// formatClock truncates to centiseconds so the running display never
// shows a value ahead of the clock.
func formatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d.%02d", ms/1000, (ms%1000)/10)
}

func (m Model) renderImage(width int) string {
	img := m.image
	if m.renderPending {
		return altTextStyle.Render(scramble.AltText(m.scramble))
	}
	if !img.Loaded {
		return altTextStyle.Width(width).Render(img.Alt)
	}
	if img.ContentType == "text/plain" {
		return string(img.Data)
	}
	// Terminals cannot draw the fetched image; point at it instead.
	lines := []string{hintStyle.Render(img.URL)}
	if len(img.Data) > 0 {
		lines = append(lines, hintStyle.Render(fmt.Sprintf("%s, %d bytes", img.ContentType, len(img.Data))))
	}
	return strings.Join(lines, "\n")
}
