// Package timer implements the solve timer state machine.
package timer

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/watchfire-io/cubetimer/internal/models"
)

// State is the timer state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Transition describes the effect of a Toggle.
type Transition struct {
	// Started is true when Toggle moved Idle -> Running.
	Started bool
	// Stopped is true when Toggle moved Running -> Idle; Record holds the
	// completed solve.
	Stopped bool
	Record  models.SolveRecord
	Elapsed time.Duration
	// Generation is the tick token valid after the transition.
	Generation int
}

// Timer measures one solve at a time. Toggle is the only way to change its
// state, so a start can never follow a start and a stop can never follow a
// stop.
type Timer struct {
	clock      clockwork.Clock
	state      State
	startedAt  time.Time
	generation int
}

// New creates an idle timer. A nil clock means the real clock.
func New(clock clockwork.Clock) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timer{clock: clock}
}

// Toggle stops a running timer or starts an idle one.
func (t *Timer) Toggle() Transition {
	if t.state == Running {
		return t.stop()
	}
	return t.start()
}

func (t *Timer) start() Transition {
	t.startedAt = t.clock.Now()
	t.state = Running
	t.generation++
	return Transition{Started: true, Generation: t.generation}
}

func (t *Timer) stop() Transition {
	elapsed := t.clock.Since(t.startedAt)
	t.state = Idle
	t.startedAt = time.Time{}
	// Bumping the generation invalidates every display tick scheduled
	// while running.
	t.generation++
	return Transition{
		Stopped:    true,
		Record:     models.NewSolveRecord(elapsed),
		Elapsed:    elapsed,
		Generation: t.generation,
	}
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Running reports whether a solve is being timed.
func (t *Timer) Running() bool {
	return t.state == Running
}

// Elapsed returns the time since start while running, and zero when idle.
func (t *Timer) Elapsed() time.Duration {
	if t.state != Running {
		return 0
	}
	return t.clock.Since(t.startedAt)
}

// Generation returns the current tick token. A display tick is live only
// while its token equals Generation and the timer is running.
func (t *Timer) Generation() int {
	return t.generation
}

// TickValid reports whether a tick scheduled with the given token may
// still update the display.
func (t *Timer) TickValid(generation int) bool {
	return t.state == Running && generation == t.generation
}

// Format renders an elapsed duration the way records are stored.
func Format(d time.Duration) string {
	return string(models.NewSolveRecord(d))
}
