package timelog

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenDay
	tokenWeek
	tokenInterval
)

type token struct {
	kind   tokenKind
	offset int
	start  uint64
	end    uint64
}

type scanState int

const (
	stateExpectRecordOrMarker scanState = iota
	stateInStart
	stateInEnd
)

// tokenizer splits log text into markers and interval records. Each call
// to next runs the record state machine from stateExpectRecordOrMarker.
type tokenizer struct {
	input string
	pos   int
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input}
}

func (t *tokenizer) next() (token, error) {
	state := stateExpectRecordOrMarker
	recordAt, sepAt := 0, 0

	for ; t.pos < len(t.input); t.pos++ {
		c := t.input[t.pos]

		switch state {
		case stateExpectRecordOrMarker:
			switch {
			case c == DayMarker:
				t.pos++
				return token{kind: tokenDay, offset: t.pos - 1}, nil
			case c == WeekMarker:
				t.pos++
				return token{kind: tokenWeek, offset: t.pos - 1}, nil
			case isDigit(c):
				recordAt = t.pos
				state = stateInStart
			default:
				return token{}, t.errorf(t.pos, t.pos+1, "unexpected character %q", c)
			}

		case stateInStart:
			switch {
			case isDigit(c):
			case c == separator:
				sepAt = t.pos
				state = stateInEnd
			case c == terminator:
				return token{}, t.errorf(recordAt, t.pos+1, "missing %q between start and end", separator)
			default:
				return token{}, t.errorf(recordAt, t.pos+1, "unexpected character %q in start timestamp", c)
			}

		case stateInEnd:
			switch {
			case isDigit(c):
			case c == terminator:
				if t.pos == sepAt+1 {
					return token{}, t.errorf(recordAt, t.pos+1, "empty end timestamp")
				}
				tok, err := t.interval(recordAt, sepAt, t.pos)
				t.pos++
				return tok, err
			default:
				return token{}, t.errorf(recordAt, t.pos+1, "unexpected character %q in end timestamp", c)
			}
		}
	}

	if state != stateExpectRecordOrMarker {
		return token{}, t.errorf(recordAt, len(t.input), "unterminated record, missing %q", terminator)
	}
	return token{kind: tokenEOF, offset: t.pos}, nil
}

// interval parses the record spanning input[recordAt:termAt].
func (t *tokenizer) interval(recordAt, sepAt, termAt int) (token, error) {
	start, err := strconv.ParseUint(t.input[recordAt:sepAt], 10, 64)
	if err != nil {
		return token{}, t.errorf(recordAt, termAt+1, "start timestamp out of range")
	}
	end, err := strconv.ParseUint(t.input[sepAt+1:termAt], 10, 64)
	if err != nil {
		return token{}, t.errorf(recordAt, termAt+1, "end timestamp out of range")
	}
	if end < start {
		return token{}, t.errorf(recordAt, termAt+1, "end %d precedes start %d", end, start)
	}
	return token{kind: tokenInterval, offset: recordAt, start: start, end: end}, nil
}

func (t *tokenizer) errorf(from, to int, format string, args ...any) error {
	return &FormatError{
		Offset: from,
		Record: t.input[from:to],
		Reason: fmt.Sprintf(format, args...),
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
