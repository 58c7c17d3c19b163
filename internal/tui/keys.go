package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are active whenever no prompt is open.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// TimerKeys drive the stopwatch. Space and Enter share one path.
type TimerKeys struct {
	Toggle key.Binding
}

var timerKeys = TimerKeys{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("Space", "start/stop"),
	),
}

// TimesKeys are active on the times list while the timer is idle.
type TimesKeys struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Scramble key.Binding
}

var timesKeys = TimesKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "delete"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear all"),
	),
	Scramble: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "new scramble"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Cancel key.Binding
}

var overlayKeys = OverlayKeys{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
