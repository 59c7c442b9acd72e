package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/tracker/internal/cli/formatter"
	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Keep time spent per description",
	}

	cmd.AddCommand(
		newLedgerAddCmd(app),
		newLedgerListCmd(app),
		newLedgerShowCmd(app),
		newLedgerExportCmd(app),
		newLedgerImportCmd(app),
		newLedgerClearCmd(app),
	)

	return cmd
}

func newLedgerAddCmd(app *App) *cobra.Command {
	var description string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record time spent on a description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (description == "" || minutes == 0) && app.interactive() {
				minStr := ""
				if minutes > 0 {
					minStr = strconv.Itoa(minutes)
				}
				if err := wizardLedgerEntry(&description, &minStr).Run(); err != nil {
					return err
				}
				minutes = parsePositiveInt(minStr, 0)
			}
			if minutes <= 0 {
				return fmt.Errorf("--minutes must be a positive number")
			}

			entry := &domain.LedgerEntry{
				EnteredAtMs: unixMillis(app.now()),
				SpentMs:     uint64(minutes) * uint64(time.Minute/time.Millisecond),
				Description: description,
				Source:      domain.SourceManual,
			}
			if err := app.Ledger.Log(cmd.Context(), entry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %q (%s)\n",
				formatter.DurationLabel(entry.SpentMs), entry.Description, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what the time was spent on")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "time spent in minutes")

	return cmd
}

func newLedgerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ledger entries, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Ledger.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderLedgerEntries(entries, app.now()))
			return nil
		},
	}
}

func newLedgerShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show total time per description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Ledger.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderLedgerSummary(summary))
			return nil
		},
	}
}

func newLedgerExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the ledger to a new CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}

			n, err := app.Ledger.ExportCSV(cmd.Context(), f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("exporting ledger: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d ledger entries to %s.\n", n, args[0])
			return nil
		},
	}
}

func newLedgerImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add every entry of a ledger CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := app.Ledger.ImportCSV(cmd.Context(), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d ledger entries from %s.\n", n, args[0])
			return nil
		},
	}
}

func newLedgerClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every ledger entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(app, yes, "Delete every ledger entry?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing was cleared.")
				return nil
			}

			n, err := app.Ledger.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d ledger entries.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
