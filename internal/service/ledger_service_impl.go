package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/tracker/internal/db"
	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/alexanderramin/tracker/internal/importer"
	"github.com/alexanderramin/tracker/internal/repository"
	"github.com/google/uuid"
)

var (
	// ErrEmptyDescription is returned when a ledger entry has no description.
	ErrEmptyDescription = errors.New("description is required")

	// ErrSpentOutOfRange is returned for durations the ledger cannot store.
	ErrSpentOutOfRange = errors.New("time spent out of range")
)

type ledgerService struct {
	entries  repository.LedgerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewLedgerService(entries repository.LedgerRepo, uow db.UnitOfWork, observers ...UseCaseObserver) LedgerService {
	return &ledgerService{entries: entries, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *ledgerService) Log(ctx context.Context, e *domain.LedgerEntry) (err error) {
	defer observe(ctx, s.observer, "ledger-log", time.Now(), map[string]any{
		"description": e.Description,
		"spent_ms":    e.SpentMs,
	}, &err)

	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return ErrEmptyDescription
	}
	if e.SpentMs > math.MaxInt64 || e.EnteredAtMs > math.MaxInt64 {
		return fmt.Errorf("%w: %d ms", ErrSpentOutOfRange, e.SpentMs)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Source == "" {
		e.Source = domain.SourceManual
	}
	e.CreatedAt = time.Now().UTC()

	return s.entries.Create(ctx, e)
}

func (s *ledgerService) List(ctx context.Context) ([]*domain.LedgerEntry, error) {
	return s.entries.List(ctx)
}

func (s *ledgerService) Summary(ctx context.Context) (summary domain.LedgerSummary, err error) {
	defer observe(ctx, s.observer, "ledger-summary", time.Now(), nil, &err)

	totals, err := s.entries.SummaryByDescription(ctx)
	if err != nil {
		return domain.LedgerSummary{}, err
	}
	summary.Totals = totals
	for _, dt := range totals {
		summary.Total += dt.SpentMs
	}
	return summary, nil
}

// ImportCSV validates the whole file first, then inserts every row in one
// transaction.
func (s *ledgerService) ImportCSV(ctx context.Context, r io.Reader) (n int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "ledger-import", time.Now(), fields, &err)

	rows, err := importer.ReadLedgerCSV(r)
	if err != nil {
		return 0, fmt.Errorf("loading ledger csv: %w", err)
	}
	if errs := importer.ValidateLedgerRows(rows); len(errs) > 0 {
		return 0, formatValidationErrors(errs)
	}
	entries, err := importer.ConvertLedgerRows(rows, time.Now())
	if err != nil {
		return 0, err
	}
	fields["rows"] = len(entries)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteLedgerRepo(tx)
		for _, e := range entries {
			if err := txEntries.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("importing ledger: %w", err)
	}
	return len(entries), nil
}

func (s *ledgerService) ExportCSV(ctx context.Context, w io.Writer) (n int, err error) {
	defer observe(ctx, s.observer, "ledger-export", time.Now(), nil, &err)

	entries, err := s.entries.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := importer.WriteLedgerCSV(w, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *ledgerService) Clear(ctx context.Context) (n int64, err error) {
	defer observe(ctx, s.observer, "ledger-clear", time.Now(), nil, &err)
	return s.entries.DeleteAll(ctx)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
