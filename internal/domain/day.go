package domain

import "time"

// Day is a server-local calendar day as the half-open interval [Start, End).
type Day struct {
	Start time.Time
	End   time.Time
}

// DayOf returns the calendar day containing t, in t's location.
// End is computed with AddDate so days shortened or stretched by DST stay correct.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return Day{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Contains reports whether t is in [Start, End).
func (d Day) Contains(t time.Time) bool {
	return !t.Before(d.Start) && t.Before(d.End)
}
