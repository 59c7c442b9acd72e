package testutil

import (
	"time"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/google/uuid"
)

// Ledger entry options
type LedgerEntryOption func(*domain.LedgerEntry)

func WithEnteredAtMs(ms uint64) LedgerEntryOption {
	return func(e *domain.LedgerEntry) {
		e.EnteredAtMs = ms
	}
}

func WithSource(s domain.LedgerSource) LedgerEntryOption {
	return func(e *domain.LedgerEntry) {
		e.Source = s
	}
}

func NewTestLedgerEntry(description string, spentMs uint64, opts ...LedgerEntryOption) *domain.LedgerEntry {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.LedgerEntry{
		ID:          uuid.New().String(),
		EnteredAtMs: uint64(now.UnixMilli()),
		SpentMs:     spentMs,
		Description: description,
		Source:      domain.SourceManual,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
