package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/cubetimer/internal/models"
)

// TimesList is the session list in the left panel. Rows are bound to
// positions in the session log: the cursor index is the index passed to
// RemoveAt.
type TimesList struct {
	entries      []models.SessionEntry
	cursor       int
	scrollOffset int
	height       int
	best         int // index of the fastest record, -1 when none parse
}

// NewTimesList creates an empty list.
func NewTimesList() *TimesList {
	return &TimesList{best: -1}
}

// SetEntries replaces the rows, keeping the cursor in bounds.
func (tl *TimesList) SetEntries(entries []models.SessionEntry) {
	tl.entries = entries
	tl.best = bestIndex(entries)
	if tl.cursor >= len(tl.entries) {
		tl.cursor = len(tl.entries) - 1
	}
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.ensureVisible()
}

// SetHeight sets the visible height.
func (tl *TimesList) SetHeight(h int) {
	tl.height = h
	tl.ensureVisible()
}

// Len returns the number of rows.
func (tl *TimesList) Len() int {
	return len(tl.entries)
}

// Cursor returns the selected 0-based index, or -1 when the list is empty.
func (tl *TimesList) Cursor() int {
	if len(tl.entries) == 0 {
		return -1
	}
	return tl.cursor
}

// MoveUp moves the cursor up.
func (tl *TimesList) MoveUp() {
	if tl.cursor > 0 {
		tl.cursor--
	}
	tl.ensureVisible()
}

// MoveDown moves the cursor down.
func (tl *TimesList) MoveDown() {
	if tl.cursor < len(tl.entries)-1 {
		tl.cursor++
	}
	tl.ensureVisible()
}

// SelectFirst moves the cursor to the oldest record.
func (tl *TimesList) SelectFirst() {
	tl.cursor = 0
	tl.ensureVisible()
}

// SelectLast moves the cursor to the newest record.
func (tl *TimesList) SelectLast() {
	tl.cursor = len(tl.entries) - 1
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.ensureVisible()
}

func (tl *TimesList) ensureVisible() {
	if tl.height <= 0 {
		return
	}
	if tl.cursor < tl.scrollOffset {
		tl.scrollOffset = tl.cursor
	}
	if tl.cursor >= tl.scrollOffset+tl.height {
		tl.scrollOffset = tl.cursor - tl.height + 1
	}
	if maxOffset := len(tl.entries) - tl.height; tl.scrollOffset > maxOffset {
		tl.scrollOffset = max(maxOffset, 0)
	}
}

func bestIndex(entries []models.SessionEntry) int {
	best := -1
	var bestSecs float64
	for i, e := range entries {
		secs, err := e.Record.Seconds()
		if err != nil {
			continue
		}
		if best < 0 || secs < bestSecs {
			best, bestSecs = i, secs
		}
	}
	return best
}

// View renders the list. focused dims the cursor while the timer runs.
func (tl *TimesList) View(width int, focused bool) string {
	if len(tl.entries) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No times yet. Press Space to start.")
	}

	height := tl.height
	if height <= 0 {
		height = len(tl.entries)
	}
	end := tl.scrollOffset + height
	if end > len(tl.entries) {
		end = len(tl.entries)
	}

	var lines []string
	for i := tl.scrollOffset; i < end; i++ {
		e := tl.entries[i]
		row := fmt.Sprintf("%4d.  %s", e.Ordinal, e.Record.String())

		// 2 for indent prefix
		if maxWidth := width - 2; maxWidth > 0 {
			row = ansi.Truncate(row, maxWidth, "…")
		}

		style := timeStyle
		if i == tl.best {
			style = bestTimeStyle
		}

		line := style.Render(row)
		if i == tl.cursor && focused {
			line = selectedItemStyle.Width(max(width-2, 1)).Render(row)
		}
		lines = append(lines, "  "+line)
	}

	// Scroll indicators
	if tl.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(tl.entries) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}
