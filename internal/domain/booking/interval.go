package booking

import "time"

// Interval is a half-open time range [Start, End). The end instant is
// excluded so back-to-back bookings can abut without conflicting.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the end is strictly after the start.
func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Overlaps is the single overlap predicate for the whole system: two
// intervals overlap iff each one's start precedes the other's end.
// Every conflict check and availability query must go through this
// function (or its SQL equivalent: start_time < end AND end_time > start).
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}
