package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/cubetimer/internal/config"
	"github.com/watchfire-io/cubetimer/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive timer",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, closer, err := config.SetupLogging(settings.Log.Level, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	return tui.Run(settings, logger)
}
