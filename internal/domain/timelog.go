package domain

// Week holds the completed day durations of one week group, in
// milliseconds, in log order.
type Week []uint64

// Total returns the sum of the week's day durations.
func (w Week) Total() uint64 {
	var total uint64
	for _, d := range w {
		total += d
	}
	return total
}

// Aggregation is the result of replaying an interval log. The zero value
// means no time has been logged.
type Aggregation struct {
	Total uint64
	Weeks []Week
}

// NoTimeLogged reports whether the aggregation carries no completed day.
func (a Aggregation) NoTimeLogged() bool {
	return len(a.Weeks) == 0
}

// DayCount returns the number of completed days across all weeks.
func (a Aggregation) DayCount() int {
	n := 0
	for _, w := range a.Weeks {
		n += len(w)
	}
	return n
}
