package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LedgerHeader is the CSV header of exported ledgers, in column order.
var LedgerHeader = []string{"Entry Date MS", "Time Spent MS", "Description"}

// LedgerRow is one raw CSV record before validation.
type LedgerRow struct {
	Line        int
	EnteredAtMs string
	SpentMs     string
	Description string
}

// ReadLedgerCSV reads every row of a ledger CSV. The header row is required
// and must match LedgerHeader exactly.
func ReadLedgerCSV(r io.Reader) ([]LedgerRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(LedgerHeader)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ledger csv is empty, expected header %q", strings.Join(LedgerHeader, ","))
		}
		return nil, fmt.Errorf("reading ledger csv header: %w", err)
	}
	for i, name := range LedgerHeader {
		if strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")) != name {
			return nil, fmt.Errorf("ledger csv column %d: got %q, want %q", i+1, header[i], name)
		}
	}

	var rows []LedgerRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ledger csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, LedgerRow{
			Line:        line,
			EnteredAtMs: rec[0],
			SpentMs:     rec[1],
			Description: rec[2],
		})
	}
	return rows, nil
}
