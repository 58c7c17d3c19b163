// Package watcher reports changes to file-backed session slots made by
// other cubetimer processes.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses the bursts produced by atomic writes
// (create temp, write, rename).
const DefaultDebounce = 100 * time.Millisecond

// Event signals that a watched slot file changed.
type Event struct {
	Path    string
	Removed bool
}

// Watcher watches a set of slot files through their parent directories.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	logger     zerolog.Logger
	delay      time.Duration

	mu    sync.RWMutex
	files map[string]bool // absolute paths of watched files

	debounceMu sync.Mutex
	debounce   map[string]*time.Timer
	stopOnce   sync.Once
}

// New creates a watcher. A zero delay uses DefaultDebounce.
func New(logger zerolog.Logger, delay time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "watcher").Logger(),
		delay:      delay,
		files:      make(map[string]bool),
		debounce:   make(map[string]*time.Timer),
	}
	go w.processEvents()
	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// WatchFile starts watching path. The parent directory is created if
// needed, since the file itself may not exist yet.
func (w *Watcher) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	w.mu.Lock()
	w.files[abs] = true
	w.mu.Unlock()

	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.logger.Debug().Str("path", abs).Msg("watching slot file")
	return nil
}

// Stop stops the watcher. Pending debounced events are dropped.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, t := range w.debounce {
			t.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("fsnotify error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Atomic writes land as Create/Rename on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	w.mu.RLock()
	watched := w.files[abs]
	w.mu.RUnlock()
	if !watched {
		return
	}

	w.debounceEvent(abs, func() {
		_, statErr := os.Stat(abs)
		ev := Event{Path: abs, Removed: os.IsNotExist(statErr)}
		w.logger.Debug().Str("path", abs).Bool("removed", ev.Removed).Msg("slot file changed")
		select {
		case w.eventsChan <- ev:
		case <-w.done:
		}
	})
}

func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
