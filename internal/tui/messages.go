package tui

import "github.com/watchfire-io/cubetimer/internal/scramble"

// tickMsg refreshes the running display. Gen is the timer generation the
// tick was scheduled under; ticks from an earlier run are dropped.
type tickMsg struct {
	gen int
}

// ScrambleMsg carries a generated scramble for request Seq.
type ScrambleMsg struct {
	Seq      int
	Scramble string
	Err      error
}

// RenderedMsg carries the rendered image for request Seq.
type RenderedMsg struct {
	Seq   int
	Image scramble.Image
	Err   error
}

// SessionChangedMsg signals that the persisted session changed on disk.
type SessionChangedMsg struct {
	Removed bool
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}
