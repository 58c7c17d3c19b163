// Package cli implements the cubetimer CLI commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cubetimer",
	Short: "Time Rubik's cube solves from the terminal",
	Long: `cubetimer shows a scramble, times your solve with the space bar and
keeps the session's results between runs.

Run without arguments in a terminal to open the timer. When stdin is not a
terminal the recorded times are printed instead.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return runTimes(cmd, args)
		}
		return runTUI(cmd, args)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}
