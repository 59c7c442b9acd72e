package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidateLedgerRows checks every row and returns all problems found.
func ValidateLedgerRows(rows []LedgerRow) []error {
	var errs []error
	for _, row := range rows {
		if _, err := parseMillis(row.EnteredAtMs); err != nil {
			errs = append(errs, fmt.Errorf("line %d: entry date: %w", row.Line, err))
		}
		if _, err := parseMillis(row.SpentMs); err != nil {
			errs = append(errs, fmt.Errorf("line %d: time spent: %w", row.Line, err))
		}
		if strings.TrimSpace(row.Description) == "" {
			errs = append(errs, fmt.Errorf("line %d: description is required", row.Line))
		}
	}
	return errs
}

// parseMillis parses a non-negative millisecond count that fits the ledger's
// signed 64-bit storage.
func parseMillis(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds %q", s)
	}
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("milliseconds %q out of range", s)
	}
	return v, nil
}
