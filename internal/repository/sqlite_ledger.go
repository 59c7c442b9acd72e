package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tracker/internal/db"
	"github.com/alexanderramin/tracker/internal/domain"
)

// SQLiteLedgerRepo implements LedgerRepo on a SQLite database or transaction.
type SQLiteLedgerRepo struct {
	db db.DBTX
}

// NewSQLiteLedgerRepo creates a new SQLiteLedgerRepo.
func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

const ledgerColumns = `id, entered_at_ms, spent_ms, description, source, created_at`

func (r *SQLiteLedgerRepo) Create(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		int64(e.EnteredAtMs),
		int64(e.SpentMs),
		e.Description,
		string(e.Source),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting ledger entry: %w", err)
	}
	return nil
}

func (r *SQLiteLedgerRepo) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = ?`
	e, err := scanLedgerEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ledger entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteLedgerRepo) List(ctx context.Context) ([]*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries ORDER BY entered_at_ms, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteLedgerRepo) SummaryByDescription(ctx context.Context) ([]domain.DescriptionTotal, error) {
	query := `SELECT description, SUM(spent_ms), COUNT(*)
		FROM ledger_entries
		GROUP BY description
		ORDER BY description`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing ledger: %w", err)
	}
	defer rows.Close()

	var totals []domain.DescriptionTotal
	for rows.Next() {
		var dt domain.DescriptionTotal
		var spent int64
		if err := rows.Scan(&dt.Description, &spent, &dt.Entries); err != nil {
			return nil, fmt.Errorf("scanning ledger summary row: %w", err)
		}
		dt.SpentMs = uint64(spent)
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger summary: %w", err)
	}
	return totals, nil
}

func (r *SQLiteLedgerRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries`)
	if err != nil {
		return 0, fmt.Errorf("clearing ledger: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared ledger entries: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerEntry(row rowScanner) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var enteredAt, spent int64
	var source, createdAtStr string

	if err := row.Scan(&e.ID, &enteredAt, &spent, &e.Description, &source, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ledger entry: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	e.EnteredAtMs = uint64(enteredAt)
	e.SpentMs = uint64(spent)
	e.Source = domain.LedgerSource(source)
	e.CreatedAt = createdAt
	return &e, nil
}
