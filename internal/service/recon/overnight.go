package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

const (
	// maxOvernightShift caps how far ahead an exit punch may pair with an
	// entry punch. Anything longer is a missed punch-out, not a shift.
	maxOvernightShift = 20 * time.Hour

	// A lone leading exit punch in this early-morning window is the tail
	// of a shift that started before the dataset and is dropped.
	ignoreExitFrom = time.Hour     // 01:00
	ignoreExitTo   = 7 * time.Hour // 07:00
)

// OvernightCalculator matches shifts at round-the-clock locations by
// pairing each entry punch with the nearest valid exit punch, allowing
// shifts to span calendar days. A matched pair is attributed to the entry
// punch's date; an unmatched entry becomes an open shift with zero
// duration.
type OvernightCalculator struct{}

func (c *OvernightCalculator) DayRecords(punches []punch.Punch, rs rules.RuleSet, datasetMin time.Time) []shift.DayRecord {
	records := punches
	if len(records) > 0 && records[0].IsExit() && inIgnoreWindow(records[0].Time) {
		records = records[1:]
	}

	var out []shift.DayRecord
	i := 0
	for i < len(records) {
		cur := records[i]
		if !cur.IsEntry() {
			// Exit with no preceding unmatched entry: ignore.
			i++
			continue
		}

		matched := -1
		for j := i + 1; j < len(records); j++ {
			next := records[j]
			if next.IsEntry() {
				// A later entry arrived before any exit: the current
				// entry is an open shift.
				break
			}
			if next.IsExit() {
				if next.Time.Sub(cur.Time) <= maxOvernightShift {
					matched = j
					break
				}
				// Too far out: skip this exit and keep scanning.
			}
		}

		if matched >= 0 {
			exit := records[matched]
			out = append(out, shift.DayRecord{
				EmployeeID:         cur.EmployeeID,
				Name:               cur.Name,
				LogicalDate:        dateutil.Day(cur.Time),
				SourceLocation:     cur.Source,
				PunchCountOriginal: 2,
				PunchCountCleaned:  2,
				FirstPunch:         cur.Time,
				LastPunch:          exit.Time,
				ShiftDuration:      exit.Time.Sub(cur.Time),
				Pattern:            shift.PatternOvernightPair,
			})
			i = matched + 1
			continue
		}

		out = append(out, shift.DayRecord{
			EmployeeID:         cur.EmployeeID,
			Name:               cur.Name,
			LogicalDate:        dateutil.Day(cur.Time),
			SourceLocation:     cur.Source,
			PunchCountOriginal: 1,
			PunchCountCleaned:  1,
			FirstPunch:         cur.Time,
			LastPunch:          cur.Time,
			OpenShift:          true,
			Pattern:            shift.PatternOpenShift,
		})
		i++
	}
	return out
}

func inIgnoreWindow(t time.Time) bool {
	sinceMidnight := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	return sinceMidnight >= ignoreExitFrom && sinceMidnight <= ignoreExitTo
}
