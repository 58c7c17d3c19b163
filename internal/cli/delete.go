package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [ordinal]",
	Aliases: []string{"rm"},
	Short:   "Delete one recorded time",
	Long: `Delete the time shown as #ordinal by 'cubetimer times'.

Later times move up one place.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ordinal: %s", args[0])
	}

	env, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	records := env.store.Records()
	if !env.store.RemoveAt(n - 1) {
		return fmt.Errorf("no entry #%d", n)
	}
	if err := env.store.Err(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("Deleted #%d (%s).", n, records[n-1].String())))
	return nil
}
