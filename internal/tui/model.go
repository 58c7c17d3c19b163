package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/scramble"
	"github.com/watchfire-io/cubetimer/internal/session"
	"github.com/watchfire-io/cubetimer/internal/timer"
)

const defaultTickInterval = 10 * time.Millisecond

// Minimum terminal size for the two-panel layout.
const (
	minWidth  = 64
	minHeight = 24
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	settings *models.Settings
	logger   zerolog.Logger

	// Domain
	timer    *timer.Timer
	store    *session.Store
	provider scramble.Provider
	renderer scramble.Renderer

	// Scramble state. scrambleSeq identifies the newest request; results
	// for older requests are dropped.
	scramble        string
	image           scramble.Image
	scrambleSeq     int
	scramblePending bool
	renderPending   bool

	// UI state
	activeOverlay int
	confirmMode   int
	width         int
	height        int

	// Status display
	err        error
	showSaved  bool
	lastRecord models.SolveRecord

	// Child components
	timesList *TimesList

	// Program reference for goroutine Send()
	program *programRef

	// Cancels in-flight renders on quit
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel loads the session and creates the initial TUI model. The first
// scramble is requested by Init.
func NewModel(deps Deps, program *programRef) Model {
	settings := deps.Settings
	if settings == nil {
		settings = models.NewSettings()
	}
	t := deps.Timer
	if t == nil {
		t = timer.New(nil)
	}

	deps.Store.Load()
	list := NewTimesList()
	list.SetEntries(deps.Store.Entries())
	list.SelectLast()

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		settings:        settings,
		logger:          deps.Logger.With().Str("component", "tui").Logger(),
		timer:           t,
		store:           deps.Store,
		provider:        deps.Provider,
		renderer:        deps.Renderer,
		scrambleSeq:     1,
		scramblePending: true,
		timesList:       list,
		program:         program,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return scrambleCmd(m.provider, m.settings.Scramble.Size, m.scrambleSeq)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	// ── Display tick ───────────────────────────────────────────────
	case tickMsg:
		// A tick from an earlier run, or one arriving after stop, must
		// not redraw or reschedule.
		if !m.timer.TickValid(msg.gen) {
			return m, nil
		}
		return m, tickCmd(m.tickInterval(), msg.gen)

	// ── Scramble ───────────────────────────────────────────────────
	case ScrambleMsg:
		if msg.Seq != m.scrambleSeq {
			m.logger.Debug().Int("seq", msg.Seq).Msg("dropping stale scramble")
			return m, nil
		}
		m.scramblePending = false
		if msg.Err != nil {
			m.logger.Error().Err(msg.Err).Msg("scramble generation failed")
			m.err = fmt.Errorf("failed to generate scramble: %w", msg.Err)
			return m, clearErrorAfter(5 * time.Second)
		}
		m.scramble = msg.Scramble
		m.image = scramble.Image{Scramble: msg.Scramble, Alt: scramble.AltText(msg.Scramble)}
		m.renderPending = true
		return m, renderCmd(m.ctx, m.renderer, msg.Scramble, msg.Seq)

	case RenderedMsg:
		if msg.Seq != m.scrambleSeq {
			m.logger.Debug().Int("seq", msg.Seq).Msg("dropping stale render")
			return m, nil
		}
		m.renderPending = false
		m.image = msg.Image
		if m.image.Alt == "" {
			m.image.Alt = scramble.AltText(m.scramble)
		}
		if msg.Err != nil {
			// Alt text stands in for the image; the timer is unaffected.
			m.image.Loaded = false
			m.logger.Warn().Err(msg.Err).Str("scramble", m.scramble).Msg("scramble image unavailable")
		}
		return m, nil

	// ── Session ────────────────────────────────────────────────────
	case SessionChangedMsg:
		// After a failed write the in-memory log holds solves the disk
		// does not; reloading would drop them.
		if err := m.store.Err(); err != nil {
			m.logger.Warn().Err(err).Msg("session changed on disk, keeping unsaved times")
			return m, nil
		}
		m.logger.Debug().Bool("removed", msg.Removed).Msg("session changed on disk, reloading")
		m.store.Load()
		m.timesList.SetEntries(m.store.Entries())
		return m, nil

	// ── Status ─────────────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.showSaved = false
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlay captures everything
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, timerKeys.Toggle):
		return m.toggle()

	case key.Matches(msg, globalKeys.Quit):
		if m.timer.Running() {
			m.confirmMode = confirmQuit
			return nil
		}
		return m.doQuit()
	}

	// Nothing else may touch the session mid-solve.
	if m.timer.Running() {
		return nil
	}

	switch {
	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
	case key.Matches(msg, timesKeys.Up):
		m.timesList.MoveUp()
	case key.Matches(msg, timesKeys.Down):
		m.timesList.MoveDown()
	case key.Matches(msg, timesKeys.Top):
		m.timesList.SelectFirst()
	case key.Matches(msg, timesKeys.Bottom):
		m.timesList.SelectLast()
	case key.Matches(msg, timesKeys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, timesKeys.Clear):
		if m.store.Len() > 0 {
			m.confirmMode = confirmClear
		}
	case key.Matches(msg, timesKeys.Scramble):
		return m.requestScramble()
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		mode := m.confirmMode
		m.confirmMode = confirmNone
		switch mode {
		case confirmClear:
			m.store.ClearAll(true)
			m.timesList.SetEntries(m.store.Entries())
			m.lastRecord = ""
			return m.storeErrorCmd()
		case confirmQuit:
			return m.doQuit()
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
		m.activeOverlay = overlayNone
	}
	return nil
}

// toggle starts or stops the timer. Stopping records the solve and asks
// for the next scramble.
func (m *Model) toggle() tea.Cmd {
	tr := m.timer.Toggle()
	if tr.Started {
		m.showSaved = false
		m.logger.Debug().Msg("timer started")
		return tickCmd(m.tickInterval(), tr.Generation)
	}

	m.lastRecord = tr.Record
	m.store.Append(tr.Record)
	m.timesList.SetEntries(m.store.Entries())
	m.timesList.SelectLast()

	cmds := []tea.Cmd{m.requestScramble()}
	if cmd := m.storeErrorCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	} else {
		m.showSaved = true
		cmds = append(cmds, clearSavedAfter(3*time.Second))
	}
	return tea.Batch(cmds...)
}

// deleteSelected removes the record under the cursor.
func (m *Model) deleteSelected() tea.Cmd {
	if !m.store.RemoveAt(m.timesList.Cursor()) {
		return nil
	}
	m.timesList.SetEntries(m.store.Entries())
	return m.storeErrorCmd()
}

// requestScramble supersedes any in-flight scramble or render.
func (m *Model) requestScramble() tea.Cmd {
	m.scrambleSeq++
	m.scramblePending = true
	m.renderPending = false
	return scrambleCmd(m.provider, m.settings.Scramble.Size, m.scrambleSeq)
}

// storeErrorCmd surfaces a failed session write in the status bar.
func (m *Model) storeErrorCmd() tea.Cmd {
	err := m.store.Err()
	if err == nil {
		return nil
	}
	m.err = err
	return clearErrorAfter(5 * time.Second)
}

// doQuit performs clean shutdown: cancel renders, clear program ref, quit.
func (m *Model) doQuit() tea.Cmd {
	m.cancel()
	if m.program != nil {
		m.program.Clear()
	}
	return tea.Quit
}

func (m *Model) tickInterval() time.Duration {
	if d := m.settings.Timer.TickInterval; d > 0 {
		return d
	}
	return defaultTickInterval
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height)
	_, innerHeight := innerSize(layout.leftWidth, layout.contentHeight)
	// 1 line for the panel title
	m.timesList.SetHeight(max(innerHeight-2, 1))
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height)

	header := renderHeader(m.timer.State(), m.store.Len(), m.settings.Storage.Backend, m.width)

	leftInner, _ := innerSize(layout.leftWidth, layout.contentHeight)
	rightInner, _ := innerSize(layout.rightWidth, layout.contentHeight)

	focused := panelTimes
	if m.timer.Running() {
		focused = panelTimer
	}
	left := panelTitleStyle.Render("Times") + "\n\n" + m.timesList.View(leftInner, focused == panelTimes)
	right := m.renderTimerPanel(rightInner)

	panels := renderPanels(left, right, layout, focused)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	if m.activeOverlay == overlayHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}

	return view
}
