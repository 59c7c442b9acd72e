package timelog

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is wrapped by every FormatError.
	ErrMalformedRecord = errors.New("malformed interval record")

	// ErrDurationOverflow is returned when accumulated time no longer fits
	// in a uint64 millisecond counter.
	ErrDurationOverflow = errors.New("accumulated duration overflows")

	// ErrInvalidInterval is returned when an interval ends before it starts.
	ErrInvalidInterval = errors.New("interval ends before it starts")
)

// FormatError reports the record that stopped a parse.
type FormatError struct {
	Offset int    // byte offset where the offending record begins
	Record string // raw text of the record up to the failure point
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrMalformedRecord.Error(), e.Record, e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedRecord
}
