package datemath

import "time"

// Range is an inclusive span of calendar days, both ends at start of day.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t's calendar day falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To.AddDate(0, 0, 1))
}
