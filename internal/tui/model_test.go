package tui

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/scramble"
	"github.com/watchfire-io/cubetimer/internal/session"
	"github.com/watchfire-io/cubetimer/internal/storage"
	"github.com/watchfire-io/cubetimer/internal/timer"
)

type stubProvider struct {
	scramble string
	err      error
}

func (p stubProvider) Scramble(int) (string, error) {
	return p.scramble, p.err
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(_ context.Context, s string) (scramble.Image, error) {
	img := scramble.Image{Scramble: s, ContentType: "text/plain", Alt: scramble.AltText(s)}
	if r.err != nil {
		return img, r.err
	}
	img.Data = []byte("[net]")
	img.Loaded = true
	return img, nil
}

type harness struct {
	model Model
	clock *clockwork.FakeClock
	slots *storage.MemorySlots
	store *session.Store
}

func newHarness(t *testing.T, persisted string, renderErr error) *harness {
	t.Helper()
	slots := storage.NewMemorySlots()
	if persisted != "" {
		if err := slots.Set(models.DefaultSlot, []byte(persisted)); err != nil {
			t.Fatalf("seed slot: %v", err)
		}
	}
	clock := clockwork.NewFakeClock()
	store := session.NewStore(slots, models.DefaultSlot, zerolog.Nop())
	m := NewModel(Deps{
		Settings: models.NewSettings(),
		Store:    store,
		Timer:    timer.New(clock),
		Provider: stubProvider{scramble: "R U R' U'"},
		Renderer: stubRenderer{err: renderErr},
		Logger:   zerolog.Nop(),
	}, nil)
	h := &harness{model: m, clock: clock, slots: slots, store: store}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) press(k string) tea.Cmd {
	switch k {
	case "space":
		return h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "ctrl+c":
		return h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	case "delete":
		return h.send(tea.KeyMsg{Type: tea.KeyDelete})
	default:
		return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func (h *harness) records() []models.SolveRecord {
	return h.store.Records()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSpacebarRecordsSolve(t *testing.T) {
	h := newHarness(t, "", nil)
	seq := h.model.scrambleSeq

	if cmd := h.press("space"); cmd == nil {
		t.Fatal("start should schedule a display tick")
	}
	if !h.model.timer.Running() {
		t.Fatal("timer not running after first press")
	}

	h.clock.Advance(12345 * time.Millisecond)
	h.press("space")

	if got, want := h.records(), []models.SolveRecord{"12.35"}; !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
	if h.model.timer.Running() {
		t.Error("timer still running after second press")
	}
	if h.model.scrambleSeq != seq+1 || !h.model.scramblePending {
		t.Errorf("new scramble not requested: seq %d -> %d, pending %v", seq, h.model.scrambleSeq, h.model.scramblePending)
	}
	if h.model.displayTime() != "12.35" {
		t.Errorf("displayTime() = %q, want 12.35", h.model.displayTime())
	}

	data, ok, err := h.slots.Get(models.DefaultSlot)
	if err != nil || !ok {
		t.Fatalf("slot not persisted: ok=%v err=%v", ok, err)
	}
	if string(data) != `["12.35"]` {
		t.Errorf("persisted = %s, want [\"12.35\"]", data)
	}

	if view := h.model.View(); !strings.Contains(view, "Press Space to start") {
		t.Errorf("idle view missing start affordance:\n%s", view)
	}
}

func TestEnterSharesToggle(t *testing.T) {
	h := newHarness(t, "", nil)

	for i := 0; i < 3; i++ {
		h.press("enter")
		h.clock.Advance(time.Second)
		h.press("space")
	}

	if got := len(h.records()); got != 3 {
		t.Errorf("len(records) = %d, want 3", got)
	}
}

func TestDeleteRemovesRowAtCursor(t *testing.T) {
	h := newHarness(t, `["10.00","20.00","30.00"]`, nil)

	if got := h.model.timesList.Cursor(); got != 2 {
		t.Fatalf("cursor = %d, want newest row", got)
	}
	h.press("k")
	h.press("x")

	want := []models.SolveRecord{"10.00", "30.00"}
	if got := h.records(); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
	entries := h.model.store.Entries()
	if entries[0].Ordinal != 1 || entries[1].Ordinal != 2 {
		t.Errorf("ordinals = %d,%d, want 1,2", entries[0].Ordinal, entries[1].Ordinal)
	}
	if h.model.timesList.Len() != 2 {
		t.Errorf("list rows = %d, want 2", h.model.timesList.Len())
	}

	// Deleting on an empty list is a no-op.
	h.press("x")
	h.press("x")
	h.press("x")
	if got := len(h.records()); got != 0 {
		t.Fatalf("len(records) = %d, want 0", got)
	}
	h.press("delete")
	if got := len(h.records()); got != 0 {
		t.Errorf("len(records) = %d after delete on empty list", got)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		cleared bool
	}{
		{"no", "n", false},
		{"escape", "esc", false},
		{"other key keeps prompt", "z", false},
		{"yes", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, `["10.00","20.00"]`, nil)

			h.press("c")
			if h.model.confirmMode != confirmClear {
				t.Fatalf("confirmMode = %d, want clear prompt", h.model.confirmMode)
			}
			h.press(tt.answer)

			_, ok, _ := h.slots.Get(models.DefaultSlot)
			if tt.cleared {
				if len(h.records()) != 0 {
					t.Errorf("records = %v, want empty", h.records())
				}
				if ok {
					t.Error("slot still present after confirmed clear")
				}
				if h.model.confirmMode != confirmNone {
					t.Error("prompt still open after yes")
				}
				return
			}
			if len(h.records()) != 2 || !ok {
				t.Errorf("clear applied without confirmation: records=%v slot=%v", h.records(), ok)
			}
		})
	}
}

func TestOtherKeysIgnoredWhileRunning(t *testing.T) {
	h := newHarness(t, `["10.00"]`, nil)
	seq := h.model.scrambleSeq

	h.press("space")
	for _, k := range []string{"x", "c", "s", "?", "k"} {
		if cmd := h.press(k); cmd != nil {
			t.Errorf("key %q returned a command while running", k)
		}
	}

	if len(h.records()) != 1 {
		t.Errorf("records changed mid-solve: %v", h.records())
	}
	if h.model.confirmMode != confirmNone || h.model.activeOverlay != overlayNone {
		t.Error("prompt or overlay opened mid-solve")
	}
	if h.model.scrambleSeq != seq {
		t.Error("scramble requested mid-solve")
	}
	if !h.model.timer.Running() {
		t.Error("timer stopped by a non-toggle key")
	}
}

func TestQuit(t *testing.T) {
	t.Run("idle quits immediately", func(t *testing.T) {
		h := newHarness(t, "", nil)
		if !isQuit(h.press("q")) {
			t.Error("q did not quit while idle")
		}
	})

	t.Run("running asks first", func(t *testing.T) {
		h := newHarness(t, "", nil)
		h.press("space")

		if cmd := h.press("ctrl+c"); cmd != nil {
			t.Fatal("ctrl+c quit without confirmation while running")
		}
		if h.model.confirmMode != confirmQuit {
			t.Fatalf("confirmMode = %d, want quit prompt", h.model.confirmMode)
		}
		h.press("n")
		if h.model.confirmMode != confirmNone || !h.model.timer.Running() {
			t.Fatal("declining quit should resume the running solve")
		}

		h.press("q")
		if !isQuit(h.press("y")) {
			t.Error("confirmed quit did not quit")
		}
	})
}

func TestStaleTicksDropped(t *testing.T) {
	h := newHarness(t, "", nil)

	h.press("space")
	gen := h.model.timer.Generation()
	if cmd := h.send(tickMsg{gen: gen}); cmd == nil {
		t.Fatal("live tick should reschedule")
	}

	h.press("space")
	if cmd := h.send(tickMsg{gen: gen}); cmd != nil {
		t.Error("tick after stop rescheduled")
	}

	h.press("space")
	if cmd := h.send(tickMsg{gen: gen}); cmd != nil {
		t.Error("tick from an earlier run rescheduled")
	}
	if cmd := h.send(tickMsg{gen: h.model.timer.Generation()}); cmd == nil {
		t.Error("tick for the current run dropped")
	}
}

func TestInitRequestsAndRendersScramble(t *testing.T) {
	h := newHarness(t, "", nil)

	msg := h.model.Init()()
	sm, ok := msg.(ScrambleMsg)
	if !ok {
		t.Fatalf("Init() produced %T, want ScrambleMsg", msg)
	}
	render := h.send(sm)
	if h.model.scramble != "R U R' U'" {
		t.Errorf("scramble = %q", h.model.scramble)
	}
	if render == nil {
		t.Fatal("scramble did not request a render")
	}
	h.send(render())

	if !h.model.image.Loaded || string(h.model.image.Data) != "[net]" {
		t.Errorf("image = %+v, want loaded net", h.model.image)
	}
	if view := h.model.View(); !strings.Contains(view, "[net]") {
		t.Errorf("view missing rendered image:\n%s", view)
	}
}

func TestLateResultsDiscarded(t *testing.T) {
	h := newHarness(t, "", nil)

	h.press("s")
	if h.model.scrambleSeq != 2 {
		t.Fatalf("scrambleSeq = %d, want 2", h.model.scrambleSeq)
	}

	if cmd := h.send(ScrambleMsg{Seq: 1, Scramble: "F"}); cmd != nil {
		t.Error("stale scramble requested a render")
	}
	if h.model.scramble != "" {
		t.Errorf("stale scramble applied: %q", h.model.scramble)
	}

	h.send(ScrambleMsg{Seq: 2, Scramble: "U2"})
	h.send(RenderedMsg{Seq: 1, Image: scramble.Image{Scramble: "F", Loaded: true}})
	if h.model.image.Scramble != "U2" || h.model.image.Loaded {
		t.Errorf("stale render applied: %+v", h.model.image)
	}
}

func TestRenderFailureShowsAltText(t *testing.T) {
	h := newHarness(t, "", errors.New("connection refused"))

	render := h.send(ScrambleMsg{Seq: 1, Scramble: "R U"})
	h.send(render())

	if h.model.image.Loaded {
		t.Error("failed render marked loaded")
	}
	if h.model.image.Alt != "Scramble: R U" {
		t.Errorf("Alt = %q", h.model.image.Alt)
	}
	if h.model.err != nil {
		t.Errorf("render failure surfaced as error: %v", h.model.err)
	}
	if view := h.model.View(); !strings.Contains(view, "Scramble: R U") {
		t.Errorf("view missing alt text:\n%s", view)
	}

	// The timer works regardless.
	h.press("space")
	h.press("space")
	if len(h.records()) != 1 {
		t.Errorf("records = %v, want one solve", h.records())
	}
}

func TestScrambleErrorShown(t *testing.T) {
	h := newHarness(t, "", nil)

	if cmd := h.send(ScrambleMsg{Seq: 1, Err: scramble.ErrUnsupportedSize}); cmd == nil {
		t.Error("error should schedule its own dismissal")
	}
	if !errors.Is(h.model.err, scramble.ErrUnsupportedSize) {
		t.Errorf("err = %v, want ErrUnsupportedSize", h.model.err)
	}
	h.send(ClearErrorMsg{})
	if h.model.err != nil {
		t.Error("ClearErrorMsg did not clear")
	}
}

func TestSessionChangedReloads(t *testing.T) {
	h := newHarness(t, `["10.00"]`, nil)

	if err := h.slots.Set(models.DefaultSlot, []byte(`["10.00","11.00","12.00"]`)); err != nil {
		t.Fatal(err)
	}
	h.send(SessionChangedMsg{})
	if h.model.timesList.Len() != 3 {
		t.Errorf("rows = %d, want 3", h.model.timesList.Len())
	}

	if err := h.slots.Remove(models.DefaultSlot); err != nil {
		t.Fatal(err)
	}
	h.send(SessionChangedMsg{Removed: true})
	if h.model.timesList.Len() != 0 || h.model.timesList.Cursor() != -1 {
		t.Errorf("rows = %d cursor = %d after removal", h.model.timesList.Len(), h.model.timesList.Cursor())
	}
}

func TestFailedWriteKeepsSolve(t *testing.T) {
	h := newHarness(t, "", nil)
	h.slots.FailWrites = errors.New("disk full")

	h.press("space")
	h.press("space")

	if len(h.records()) != 1 {
		t.Errorf("records = %v, want the solve kept in memory", h.records())
	}
	if h.model.err == nil {
		t.Error("failed write not reported")
	}
	if h.model.showSaved {
		t.Error("Saved shown for a failed write")
	}

	// A change on disk must not replace the unsaved times.
	h.send(SessionChangedMsg{})
	if len(h.records()) != 1 || h.model.timesList.Len() != 1 {
		t.Errorf("records = %v after reload, want the unsaved solve kept", h.records())
	}
}

func TestHelpOverlay(t *testing.T) {
	h := newHarness(t, "", nil)

	h.press("?")
	if h.model.activeOverlay != overlayHelp {
		t.Fatal("? did not open help")
	}
	if view := h.model.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("help overlay not drawn")
	}

	// Help swallows keys, including the toggle.
	h.press("space")
	if h.model.timer.Running() {
		t.Error("toggle reached the timer through the help overlay")
	}
	h.press("esc")
	if h.model.activeOverlay != overlayNone {
		t.Error("esc did not close help")
	}
}

func TestSmallTerminal(t *testing.T) {
	h := newHarness(t, "", nil)
	h.send(tea.WindowSizeMsg{Width: 40, Height: 10})

	if view := h.model.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("view = %q", view)
	}
}
