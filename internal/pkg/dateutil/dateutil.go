package dateutil

import "time"

// Day truncates a timestamp to its calendar date at midnight UTC. All
// date-level bookkeeping in the engine uses these normalized values as map
// keys and list elements.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ISO formats a date as yyyy-mm-dd.
func ISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseISO parses a yyyy-mm-dd date string.
func ParseISO(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DaysBetween returns the inclusive number of calendar days in [start, end].
// Returns 0 when end is before start.
func DaysBetween(start, end time.Time) int {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ISOList formats a date slice as yyyy-mm-dd strings.
func ISOList(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, ISO(d))
	}
	return out
}
