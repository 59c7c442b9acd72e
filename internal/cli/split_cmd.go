package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSplitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split the tracked time into days and weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "day",
			Short: "Close the current day",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.TimeLog.SplitDay(cmd.Context()); err != nil {
					return fmt.Errorf("splitting day: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Started a new day.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "week",
			Short: "Close the current day and week",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.TimeLog.SplitWeek(cmd.Context()); err != nil {
					return fmt.Errorf("splitting week: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Started a new week.")
				return nil
			},
		},
	)

	return cmd
}
