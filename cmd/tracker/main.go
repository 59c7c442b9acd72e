package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/tracker/internal/cli"
	"github.com/alexanderramin/tracker/internal/config"
	"github.com/alexanderramin/tracker/internal/db"
	"github.com/alexanderramin/tracker/internal/logfile"
	"github.com/alexanderramin/tracker/internal/repository"
	"github.com/alexanderramin/tracker/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{Config: cfg}

	// Services are wired after flag parsing so --log and --db apply.
	app.Setup = func(app *cli.App) error {
		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if app.Config.LogCalls {
			level, err := app.Config.Level()
			if err != nil {
				return err
			}
			observer = service.NewLogUseCaseObserver(os.Stderr, level)
		}

		conn, err := db.OpenDB(app.Config.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		database = conn

		ledgerRepo := repository.NewSQLiteLedgerRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		app.TimeLog = service.NewTimeLogService(logfile.NewOsStore(app.Config.LogPath), observer)
		app.Ledger = service.NewLedgerService(ledgerRepo, uow, observer)
		return nil
	}

	// Detect interactive terminal for the stopwatch and confirmations.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
