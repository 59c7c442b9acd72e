package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/google/uuid"
)

// ConvertLedgerRows turns validated rows into ledger entries ready for
// persistence. Call ValidateLedgerRows first.
func ConvertLedgerRows(rows []LedgerRow, now time.Time) ([]*domain.LedgerEntry, error) {
	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entered, err := parseMillis(row.EnteredAtMs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row.Line, err)
		}
		spent, err := parseMillis(row.SpentMs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row.Line, err)
		}
		entries = append(entries, &domain.LedgerEntry{
			ID:          uuid.New().String(),
			EnteredAtMs: entered,
			SpentMs:     spent,
			Description: strings.TrimSpace(row.Description),
			Source:      domain.SourceImport,
			CreatedAt:   now.UTC(),
		})
	}
	return entries, nil
}
