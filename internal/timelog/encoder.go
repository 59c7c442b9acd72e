package timelog

import (
	"fmt"
	"strconv"
)

// Reserved log bytes.
const (
	DayMarker  = '?'
	WeekMarker = '\n'

	separator  = '|'
	terminator = ','
)

// Appender persists raw log bytes. Implementations must only ever add
// bytes to the end of the log.
type Appender interface {
	Append(p []byte) error
}

// Encoder writes records and markers through an Appender. Every call is a
// single append; nothing already written is read back or rewritten.
type Encoder struct {
	out Appender
}

// NewEncoder creates an Encoder that appends to out.
func NewEncoder(out Appender) *Encoder {
	return &Encoder{out: out}
}

// EncodeInterval returns the wire form of one interval record.
func EncodeInterval(start, end uint64) []byte {
	b := make([]byte, 0, 2*20+2)
	b = strconv.AppendUint(b, start, 10)
	b = append(b, separator)
	b = strconv.AppendUint(b, end, 10)
	return append(b, terminator)
}

// AppendInterval appends the record "start|end,".
func (e *Encoder) AppendInterval(start, end uint64) error {
	if end < start {
		return fmt.Errorf("%w: start %d, end %d", ErrInvalidInterval, start, end)
	}
	if err := e.out.Append(EncodeInterval(start, end)); err != nil {
		return fmt.Errorf("appending interval: %w", err)
	}
	return nil
}

// AppendDayMarker closes the current day.
func (e *Encoder) AppendDayMarker() error {
	if err := e.out.Append([]byte{DayMarker}); err != nil {
		return fmt.Errorf("appending day marker: %w", err)
	}
	return nil
}

// AppendWeekMarker closes the current day and week.
func (e *Encoder) AppendWeekMarker() error {
	if err := e.out.Append([]byte{WeekMarker}); err != nil {
		return fmt.Errorf("appending week marker: %w", err)
	}
	return nil
}
