package timelog

import (
	"fmt"
	"math/bits"

	"github.com/alexanderramin/tracker/internal/domain"
)

// Aggregate replays log text into per-day, per-week and overall totals in
// a single pass. Any malformed record fails the whole call. A log without
// a single completed day yields the zero Aggregation.
func Aggregate(logText string) (domain.Aggregation, error) {
	tz := newTokenizer(logText)

	var acc accumulator
	for {
		tok, err := tz.next()
		if err != nil {
			return domain.Aggregation{}, err
		}
		acc, err = acc.apply(tok)
		if err != nil {
			return domain.Aggregation{}, err
		}
		if tok.kind == tokenEOF {
			break
		}
	}

	result := domain.Aggregation{Total: acc.total, Weeks: acc.weeks}
	if result.DayCount() == 0 {
		return domain.Aggregation{}, nil
	}
	return result, nil
}

// accumulator is the two-level fold state: the day in progress and the
// week in progress, plus everything already closed.
type accumulator struct {
	total uint64
	day   uint64
	week  domain.Week
	weeks []domain.Week
}

func (a accumulator) apply(tok token) (accumulator, error) {
	switch tok.kind {
	case tokenDay:
		return a.closeDay(), nil

	case tokenWeek:
		a = a.closeDay()
		return a.closeWeek(), nil

	case tokenInterval:
		d := tok.end - tok.start
		day, carry := bits.Add64(a.day, d, 0)
		if carry != 0 {
			return a, fmt.Errorf("record at offset %d: day %w", tok.offset, ErrDurationOverflow)
		}
		total, carry := bits.Add64(a.total, d, 0)
		if carry != 0 {
			return a, fmt.Errorf("record at offset %d: total %w", tok.offset, ErrDurationOverflow)
		}
		a.day, a.total = day, total
		return a, nil

	case tokenEOF:
		a = a.closeDay()
		if len(a.week) > 0 {
			a = a.closeWeek()
		}
		return a, nil
	}
	return a, fmt.Errorf("unknown token kind %d", tok.kind)
}

// closeDay moves a nonzero day into the current week. Zero days are
// dropped so repeated markers never produce empty entries.
func (a accumulator) closeDay() accumulator {
	if a.day > 0 {
		a.week = append(a.week, a.day)
		a.day = 0
	}
	return a
}

// closeWeek appends the current week, empty or not.
func (a accumulator) closeWeek() accumulator {
	w := a.week
	if w == nil {
		w = domain.Week{}
	}
	a.weeks = append(a.weeks, w)
	a.week = nil
	return a
}
