package shift

import (
	"fmt"
	"time"
)

// Pattern labels the punch template a day's record was derived from. It is
// an audit tag, not an error: ambiguous sequences degrade to the
// total-presence fallback and keep their label.
type Pattern string

const (
	PatternNoPunches     Pattern = "no punches"
	PatternSinglePunch   Pattern = "single punch"
	PatternTwoShifts     Pattern = "two shifts with one break"
	PatternClassified    Pattern = "classified intervals"
	PatternInferredPairs Pattern = "inferred two shifts with one break"
	PatternTotalPresence Pattern = "total presence"
	PatternOvernightPair Pattern = "paired overnight shift"
	PatternOpenShift     Pattern = "open shift"
)

// UnusualFlag marks shifts deviating more than a tolerance from the
// location's standard hours.
type UnusualFlag string

const (
	UnusualNone  UnusualFlag = ""
	UnusualLong  UnusualFlag = "long"
	UnusualShort UnusualFlag = "short"
)

// DayRecord is one employee's worked time for one logical day. For overnight
// locations a record covers one matched entry/exit pair, which may span two
// calendar dates; it is attributed to the entry punch's date. Immutable once
// produced.
type DayRecord struct {
	EmployeeID         string
	Name               string
	LogicalDate        time.Time
	SourceLocation     string
	PunchCountOriginal int
	PunchCountCleaned  int
	FirstPunch         time.Time
	LastPunch          time.Time
	ShiftDuration      time.Duration
	BreakDuration      time.Duration
	MoreT              time.Duration
	ShortT             time.Duration
	PostMidnightMoreT  time.Duration
	IsMoreTDay         bool
	IsShortTDay        bool
	FixedBreakDeducted bool
	OpenShift          bool
	Unusual            UnusualFlag
	Pattern            Pattern
}

// Present reports whether the day counts as presence for absence
// enumeration: any positive shift duration, or a single-punch day.
func (r DayRecord) Present() bool {
	return r.ShiftDuration > 0 || r.Pattern == PatternSinglePunch
}

// FormatDuration renders a duration as HH:MM:SS. Hours are not wrapped at
// 24, matching how worked time appears on the report sheets.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
