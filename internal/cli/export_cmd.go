package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tracker/internal/cli/formatter"
	"github.com/alexanderramin/tracker/internal/logfile"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "export FILE",
		Aliases: []string{"e"},
		Short:   "Copy the raw time log to a new file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := args[0]
			err := app.TimeLog.Export(cmd.Context(), dest)
			switch {
			case errors.Is(err, logfile.ErrNoLog):
				fmt.Fprintln(cmd.OutOrStdout(), formatter.NoTimeLoggedMessage)
				return nil
			case err != nil:
				return fmt.Errorf("exporting log: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported time log to %s.\n", dest)
			return nil
		},
	}
}
