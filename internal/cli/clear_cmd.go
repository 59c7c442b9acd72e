package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "clear",
		Aliases: []string{"c"},
		Short:   "Clear all tracked time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(app, yes, "Clear all tracked time?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing was cleared.")
				return nil
			}

			if err := app.TimeLog.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing log: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Your tracking progress has been cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
