package repository

import (
	"context"

	"github.com/alexanderramin/tracker/internal/domain"
)

type LedgerRepo interface {
	Create(ctx context.Context, e *domain.LedgerEntry) error
	GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error)
	List(ctx context.Context) ([]*domain.LedgerEntry, error)
	SummaryByDescription(ctx context.Context) ([]domain.DescriptionTotal, error)
	DeleteAll(ctx context.Context) (int64, error)
}

var _ LedgerRepo = (*SQLiteLedgerRepo)(nil)
