package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/cubetimer/internal/models"
)

var timesJSON bool

var timesCmd = &cobra.Command{
	Use:     "times",
	Aliases: []string{"ls"},
	Short:   "List recorded times",
	Long: `List the session's recorded times in the order they were solved.

Ordinals are 1-based and are the numbers accepted by 'cubetimer delete'.`,
	Args: cobra.NoArgs,
	RunE: runTimes,
}

func init() {
	timesCmd.Flags().BoolVar(&timesJSON, "json", false, "print the stored JSON array")
}

func runTimes(cmd *cobra.Command, args []string) error {
	env, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()

	if timesJSON {
		data, err := json.Marshal(env.store.Records())
		if err != nil {
			return fmt.Errorf("failed to encode times: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	entries := env.store.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No times recorded. Run "+styleCommand.Render("cubetimer")+" to start timing.")
		return nil
	}

	best := bestEntry(entries)
	for i, e := range entries {
		line := fmt.Sprintf("%4d.  %s", e.Ordinal, e.Record.String())
		if i == best {
			fmt.Fprintln(out, styleBest.Render(line)+"  "+styleHint.Render("best"))
			continue
		}
		fmt.Fprintln(out, styleTime.Render(line))
	}
	return nil
}

// bestEntry returns the index of the fastest record, or -1.
func bestEntry(entries []models.SessionEntry) int {
	best := -1
	var bestSecs float64
	for i, e := range entries {
		secs, err := e.Record.Seconds()
		if err != nil {
			continue
		}
		if best < 0 || secs < bestSecs {
			best, bestSecs = i, secs
		}
	}
	return best
}
