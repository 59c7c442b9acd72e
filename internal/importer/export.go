package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/tracker/internal/domain"
)

// WriteLedgerCSV writes entries with the LedgerHeader so the output can be
// read back by ReadLedgerCSV.
func WriteLedgerCSV(w io.Writer, entries []*domain.LedgerEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LedgerHeader); err != nil {
		return fmt.Errorf("writing ledger csv header: %w", err)
	}
	for _, e := range entries {
		rec := []string{
			strconv.FormatUint(e.EnteredAtMs, 10),
			strconv.FormatUint(e.SpentMs, 10),
			e.Description,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing ledger csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing ledger csv: %w", err)
	}
	return nil
}
