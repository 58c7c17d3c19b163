package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/cubetimer/internal/session"
)

// confirmMode values.
const (
	confirmNone  = 0
	confirmClear = 1
	confirmQuit  = 2
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmClear {
		return renderConfirmBar(session.ClearPrompt+" (y/n)", width)
	}
	if m.confirmMode == confirmQuit {
		return renderConfirmBar("Timer running. Quit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.showSaved {
		return renderSavedBar(string(m.lastRecord), width)
	}

	left := " " + getKeyHints(m)

	right := ""
	if m.store.Err() != nil {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Not saved") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Esc", "close")
	}
	if m.timer.Running() {
		return keyHint("Space", "stop")
	}
	return keyHint("Space", "start") + "  " + keyHint("j/k", "navigate") + "  " +
		keyHint("x", "delete") + "  " + keyHint("c", "clear") + "  " +
		keyHint("s", "scramble") + "  " + keyHint("?", "help") + "  " + keyHint("q", "quit")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(record string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render("Saved "+record))
}
