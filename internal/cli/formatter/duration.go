package formatter

import (
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// FormatDuration renders ms as its nonzero hour, minute and second
// components, e.g. "1 Hour 1 Minute 1 Second" or "2 Hours". Sub-second
// remainders are dropped and a zero duration renders as "".
func FormatDuration(ms uint64) string {
	parts := make([]string, 0, 3)
	parts = appendUnit(parts, ms/msPerHour, "Hour")
	parts = appendUnit(parts, (ms/msPerMinute)%60, "Minute")
	parts = appendUnit(parts, (ms/msPerSecond)%60, "Second")
	return strings.Join(parts, " ")
}

// DurationLabel is FormatDuration with a visible label for durations under
// one second.
func DurationLabel(ms uint64) string {
	if s := FormatDuration(ms); s != "" {
		return s
	}
	return "0 Seconds"
}

func appendUnit(parts []string, n uint64, unit string) []string {
	if n == 0 {
		return parts
	}
	s := strconv.FormatUint(n, 10) + " " + unit
	if n > 1 {
		s += "s"
	}
	return append(parts, s)
}
