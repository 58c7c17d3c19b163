package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/watchfire-io/cubetimer/internal/config"
	"github.com/watchfire-io/cubetimer/internal/models"
)

var (
	settingsInit  bool
	settingsForce bool
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show effective settings and file locations",
	Long: `Show the settings in effect, merged over the defaults, and where
cubetimer keeps its files.

--init writes the default settings file so it can be edited.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsInit, "init", false, "write the default settings file")
	settingsCmd.Flags().BoolVar(&settingsForce, "force", false, "with --init, overwrite an existing file")
}

func runSettings(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	if settingsInit {
		if config.FileExists(path) && !settingsForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.SaveSettings(models.NewSettings()); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
		fmt.Fprintln(out, styleSuccess.Render("Wrote "+path))
		return nil
	}

	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dataDir, _ := config.GlobalDataDir()
	dbFile, _ := config.GlobalDatabaseFile()
	logFile, _ := config.GlobalLogFile()

	source := path
	if !config.FileExists(path) {
		source += styleHint.Render(" (not present, using defaults)")
	}

	printField(cmd, "Settings", source)
	switch settings.Storage.Backend {
	case models.StorageBackendSQLite:
		printField(cmd, "Session", fmt.Sprintf("%s (slot %s)", dbFile, settings.Storage.Slot))
	default:
		printField(cmd, "Session", fmt.Sprintf("%s/%s.json", dataDir, settings.Storage.Slot))
	}
	printField(cmd, "Log", logFile)
	fmt.Fprintln(out)
	fmt.Fprint(out, string(data))
	return nil
}

func printField(cmd *cobra.Command, label, value string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleLabel.Render(fmt.Sprintf("%-9s", label+":")), styleValue.Render(value))
}
