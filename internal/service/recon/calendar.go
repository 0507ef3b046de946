package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// IsRestDay reports whether a date is a rest day under a fixed or
// alternating weekend policy. Rotational policies express rest as a weekly
// quota, not as specific dates, so every date returns false for them.
func IsRestDay(date time.Time, rs rules.RuleSet) bool {
	if rs.IsRotationalOff || len(rs.WeekendDays) == 0 {
		return false
	}
	wd := date.Weekday()
	if rs.WeekendRuleType == rules.WeekendRuleAlternating {
		_, week := date.ISOWeek()
		if week%2 == 1 {
			// Odd weeks rest only on the first configured weekend day.
			return wd == rs.WeekendDays[0]
		}
	}
	for _, d := range rs.WeekendDays {
		if wd == d {
			return true
		}
	}
	return false
}

// ExpectedWorkingDays returns the expected number of working days in the
// inclusive range [start, end] under the given rules. Rotational policies
// yield a real number (fractional days are fine for aggregate reporting);
// fixed and alternating policies walk the calendar.
func ExpectedWorkingDays(start, end time.Time, rs rules.RuleSet) float64 {
	totalDays := dateutil.DaysBetween(start, end)
	if totalDays == 0 {
		return 0
	}

	if rs.IsRotationalOff {
		offs := float64(totalDays) * float64(rs.RotationalOffsPerWeek) / 7.0
		return float64(totalDays) - offs
	}

	working := 0
	for d := dateutil.Day(start); !d.After(dateutil.Day(end)); d = d.AddDate(0, 0, 1) {
		if !IsRestDay(d, rs) {
			working++
		}
	}
	return float64(working)
}
