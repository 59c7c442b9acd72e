package domain

import "time"

// LedgerSource records how a ledger entry was created.
type LedgerSource string

const (
	SourceTracked LedgerSource = "tracked"
	SourceManual  LedgerSource = "manual"
	SourceImport  LedgerSource = "import"
)

// LedgerEntry is one description-keyed record of tracked time.
type LedgerEntry struct {
	ID          string
	EnteredAtMs uint64
	SpentMs     uint64
	Description string
	Source      LedgerSource
	CreatedAt   time.Time
}

// EnteredAt returns the entry timestamp as a time.Time in UTC.
func (e LedgerEntry) EnteredAt() time.Time {
	return time.UnixMilli(int64(e.EnteredAtMs)).UTC()
}

// DescriptionTotal is the summed time spent on one description.
type DescriptionTotal struct {
	Description string
	SpentMs     uint64
	Entries     int
}

// LedgerSummary groups ledger time by description. Totals are sorted by
// description and Total is the sum across every entry.
type LedgerSummary struct {
	Totals []DescriptionTotal
	Total  uint64
}
