package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/cubetimer/internal/config"
	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/session"
	"github.com/watchfire-io/cubetimer/internal/storage"
)

// Swapped in tests.
var (
	loadSettings = config.LoadSettings
	openSlots    = storage.Open
)

// sessionEnv is what the session subcommands work on.
type sessionEnv struct {
	settings *models.Settings
	store    *session.Store
	slots    storage.Slots
	logger   zerolog.Logger
}

func (e *sessionEnv) Close() {
	if err := e.slots.Close(); err != nil {
		e.logger.Warn().Err(err).Msg("failed to close session storage")
	}
}

// cliLogger writes console logs to stderr. Only warnings and errors are
// shown unless --verbose is set.
func cliLogger(settings *models.Settings) zerolog.Logger {
	level := "warn"
	if verbose {
		level = settings.Log.Level
	}
	logger, _, err := config.SetupLogging(level, false)
	if err != nil {
		logger, _, _ = config.SetupLogging("warn", false)
		logger.Warn().Err(err).Msg("falling back to warn level")
	}
	return logger
}

// openSession loads settings, opens the configured backend and reads the
// persisted session.
func openSession(cmd *cobra.Command) (*sessionEnv, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger := cliLogger(settings)

	slots, err := openSlots(settings.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}

	store := session.NewStore(slots, settings.Storage.Slot, logger)
	store.Load()

	logger.Debug().Str("command", cmd.Name()).Int("count", store.Len()).Msg("session opened")
	return &sessionEnv{settings: settings, store: store, slots: slots, logger: logger}, nil
}
