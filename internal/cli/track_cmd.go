package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/tracker/internal/cli/formatter"
	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/spf13/cobra"
)

var errTrackingCancelled = errors.New("tracking cancelled, nothing was recorded")

func newTrackCmd(app *App) *cobra.Command {
	var describe string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Start the tracker and record the interval when it stops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			started := app.now()

			if err := waitForStop(cmd, app, started); err != nil {
				return err
			}
			stopped := app.now()

			startMs, endMs := unixMillis(started), unixMillis(stopped)
			if err := app.TimeLog.RecordInterval(ctx, startMs, endMs); err != nil {
				return fmt.Errorf("recording interval: %w", err)
			}
			elapsed := endMs - startMs

			fmt.Fprintf(cmd.OutOrStdout(), "You have successfully tracked %s time.\n", formatter.DurationLabel(elapsed))

			if describe == "" {
				return nil
			}
			entry := &domain.LedgerEntry{
				EnteredAtMs: startMs,
				SpentMs:     elapsed,
				Description: describe,
				Source:      domain.SourceTracked,
			}
			if err := app.Ledger.Log(ctx, entry); err != nil {
				return fmt.Errorf("recording %q in ledger: %w", describe, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to ledger as %q.\n", entry.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&describe, "describe", "", "also record the tracked time in the ledger under this description")

	return cmd
}

// waitForStop blocks until the user stops the tracker: the stopwatch on a
// terminal, otherwise one line of input.
func waitForStop(cmd *cobra.Command, app *App, started time.Time) error {
	if app.interactive() {
		stopwatch := app.Stopwatch
		if stopwatch == nil {
			stopwatch = runStopwatch
		}
		cancelled, err := stopwatch(cmd, started)
		if err != nil {
			return err
		}
		if cancelled {
			return errTrackingCancelled
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), "Your tracker has started, type anything to stop the tracker: ")
	_, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("waiting for input: %w", err)
	}
	return nil
}

func unixMillis(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
