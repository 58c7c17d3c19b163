// Package tui implements the interactive cube timer.
package tui

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/scramble"
	"github.com/watchfire-io/cubetimer/internal/session"
	"github.com/watchfire-io/cubetimer/internal/storage"
	"github.com/watchfire-io/cubetimer/internal/timer"
	"github.com/watchfire-io/cubetimer/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Deps are the collaborators the model drives.
type Deps struct {
	Settings *models.Settings
	Store    *session.Store
	Timer    *timer.Timer
	Provider scramble.Provider
	Renderer scramble.Renderer
	Logger   zerolog.Logger
}

// NewRenderer returns the renderer selected in the scramble settings.
func NewRenderer(settings *models.Settings) scramble.Renderer {
	if settings.Scramble.Renderer == models.RendererNet {
		return scramble.NetRenderer{}
	}
	return scramble.NewVisualCube(settings.VisualCube, &http.Client{})
}

// Run opens the session slot and launches the TUI.
func Run(settings *models.Settings, logger zerolog.Logger) error {
	slots, err := storage.Open(settings.Storage)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	defer slots.Close()

	store := session.NewStore(slots, settings.Storage.Slot, logger)

	ref := &programRef{}
	model := NewModel(Deps{
		Settings: settings,
		Store:    store,
		Timer:    timer.New(nil),
		Provider: scramble.NewRandomMoves(settings.Scramble.Length, nil),
		Renderer: NewRenderer(settings),
		Logger:   logger,
	}, ref)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Store program reference for goroutine sends
	ref.Set(p)

	// Other cubetimer invocations write the same slot file.
	if fs, ok := slots.(*storage.FileSlots); ok {
		w, err := watcher.New(logger, 0)
		if err != nil {
			logger.Warn().Err(err).Msg("session watcher unavailable")
		} else {
			defer w.Stop()
			if err := w.WatchFile(fs.Path(store.Key())); err != nil {
				logger.Warn().Err(err).Msg("failed to watch session file")
			}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go forwardSessionEvents(ctx, w, ref)
		}
	}

	logger.Info().
		Str("backend", settings.Storage.Backend).
		Str("renderer", settings.Scramble.Renderer).
		Msg("starting tui")

	_, err = p.Run()
	ref.Clear()
	return err
}

func forwardSessionEvents(ctx context.Context, w *watcher.Watcher, ref *programRef) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-w.Events():
			ref.Send(SessionChangedMsg{Removed: ev.Removed})
		}
	}
}
