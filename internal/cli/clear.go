package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/cubetimer/internal/session"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded times",
	Long: `Delete every recorded time and remove the saved session.

Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	env, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()

	if env.store.Len() == 0 {
		fmt.Fprintln(out, "No times to clear.")
		return nil
	}

	confirmed := clearYes
	if !confirmed {
		reader := bufio.NewReader(cmd.InOrStdin())
		confirmed = promptYesNo(reader, out, session.ClearPrompt, false)
	}

	count := env.store.Len()
	if !env.store.ClearAll(confirmed) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}
	if err := env.store.Err(); err != nil {
		return err
	}

	fmt.Fprintln(out, styleSuccess.Render(fmt.Sprintf("Cleared %d times.", count)))
	return nil
}
