package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/cubetimer/internal/scramble"
)

func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func scrambleCmd(p scramble.Provider, size, seq int) tea.Cmd {
	return func() tea.Msg {
		s, err := p.Scramble(size)
		return ScrambleMsg{Seq: seq, Scramble: s, Err: err}
	}
}

func renderCmd(ctx context.Context, r scramble.Renderer, s string, seq int) tea.Cmd {
	return func() tea.Msg {
		img, err := r.Render(ctx, s)
		return RenderedMsg{Seq: seq, Image: img, Err: err}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}
