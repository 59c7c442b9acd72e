package service

import (
	"context"
	"io"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/alexanderramin/tracker/internal/timelog"
)

// LogStore is the file-access collaborator behind the interval log.
type LogStore interface {
	timelog.Appender
	ReadAll() (string, error)
	Remove() error
	ExportTo(dest string) error
}

type TimeLogService interface {
	RecordInterval(ctx context.Context, startMs, endMs uint64) error
	SplitDay(ctx context.Context) error
	SplitWeek(ctx context.Context) error
	Report(ctx context.Context) (domain.Aggregation, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, dest string) error
}

type LedgerService interface {
	Log(ctx context.Context, e *domain.LedgerEntry) error
	List(ctx context.Context) ([]*domain.LedgerEntry, error)
	Summary(ctx context.Context) (domain.LedgerSummary, error)
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
	Clear(ctx context.Context) (int64, error)
}
