package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tracker/internal/config"
	"github.com/alexanderramin/tracker/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the configuration and service interfaces used by CLI commands.
type App struct {
	Config  config.Config
	TimeLog service.TimeLogService
	Ledger  service.LedgerService

	// Setup wires TimeLog and Ledger from the final configuration once
	// flags are parsed. Leave nil when the services are already set.
	Setup func(app *App) error

	// Now reads the wall clock. Defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Interactive runs
	// get the stopwatch and confirmation prompts.
	IsInteractive func() bool

	// Stopwatch runs the interactive tracker until the user stops it and
	// reports whether the run was cancelled. Defaults to runStopwatch.
	Stopwatch func(cmd *cobra.Command, started time.Time) (cancelled bool, err error)

	// Confirm asks a yes/no question. Defaults to a huh confirm form.
	Confirm func(title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Track time spent in days and weeks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			if err := app.Setup(app); err != nil {
				return fmt.Errorf("starting tracker: %w", err)
			}
			return nil
		},
	}

	bindPathFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newTrackCmd(app),
		newSplitCmd(app),
		newShowCmd(app),
		newClearCmd(app),
		newExportCmd(app),
		newLedgerCmd(app),
	)

	return root
}

// bindPathFlags registers the storage location overrides. The current
// configuration values are the flag defaults.
func bindPathFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "path of the interval log file")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path of the ledger database")
}
