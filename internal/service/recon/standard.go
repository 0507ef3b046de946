package recon

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
)

// StandardCalculator groups punches by logical day and infers shift and
// break durations from the cleaned punch pattern of each day.
type StandardCalculator struct {
	// StatusPresent is true when the batch carried entry/exit labels.
	// Without labels, inference degrades to positional and total-presence
	// modes instead of failing.
	StatusPresent bool

	// Rules, when set, resolves each day's thresholds from that day's
	// source location instead of reusing the employee-level rule set.
	Rules RuleLookup
}

func (c *StandardCalculator) DayRecords(punches []punch.Punch, rs rules.RuleSet, datasetMin time.Time) []shift.DayRecord {
	byDay := make(map[time.Time][]punch.Punch)
	for _, p := range punches {
		day := LogicalDate(p, false, datasetMin)
		byDay[day] = append(byDay[day], p)
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	records := make([]shift.DayRecord, 0, len(days))
	for _, day := range days {
		group := byDay[day]
		dayRules := rs
		if c.Rules != nil {
			dayRules = c.Rules(group[0].EmployeeID, group[0].Source)
		}
		records = append(records, c.dayRecord(day, group, dayRules))
	}
	return records
}

func (c *StandardCalculator) dayRecord(day time.Time, group []punch.Punch, rs rules.RuleSet) shift.DayRecord {
	first := group[0]
	cleaned := Normalize(group, c.StatusPresent)

	rec := shift.DayRecord{
		EmployeeID:         first.EmployeeID,
		Name:               first.Name,
		LogicalDate:        day,
		SourceLocation:     first.Source,
		PunchCountOriginal: len(group),
		PunchCountCleaned:  len(cleaned),
		FirstPunch:         group[0].Time,
		LastPunch:          group[len(group)-1].Time,
	}

	shiftDur, breakDur, pattern := c.infer(cleaned)
	rec.Pattern = pattern

	// Fixed-break deduction: locations without a punch-out culture for
	// lunch get a configured break subtracted once per qualifying day.
	if rs.FixedBreakDeductionMinutes > 0 &&
		shiftDur.Hours() >= rs.FixedBreakThresholdHours &&
		breakDur == 0 && len(cleaned) >= 2 {
		deduction := time.Duration(rs.FixedBreakDeductionMinutes) * time.Minute
		if shiftDur > deduction {
			shiftDur -= deduction
			breakDur += deduction
		} else {
			breakDur += shiftDur
			shiftDur = 0
		}
		rec.FixedBreakDeducted = true
	}

	rec.ShiftDuration = shiftDur
	rec.BreakDuration = breakDur

	hours := shiftDur.Hours()
	if rs.MoreTEnabled && hours > rs.MoreTStartHours {
		rec.MoreT = time.Duration((hours - rs.MoreTStartHours) * float64(time.Hour))
		rec.IsMoreTDay = rec.MoreT > 0
	}
	if hours > 0 && hours < rs.ShortThresholdHours {
		rec.ShortT = time.Duration((rs.ShortThresholdHours - hours) * float64(time.Hour))
		rec.IsShortTDay = rec.ShortT > 0
	}
	return rec
}

// infer classifies a cleaned punch pattern, in priority order: explicit
// four-punch alternation, label-walked intervals, positional two-shift
// inference, then the total-presence fallback. Ambiguity is never an error;
// the pattern label records which template matched.
func (c *StandardCalculator) infer(cleaned []punch.Punch) (shiftDur, breakDur time.Duration, pattern shift.Pattern) {
	switch len(cleaned) {
	case 0:
		return 0, 0, shift.PatternNoPunches
	case 1:
		return 0, 0, shift.PatternSinglePunch
	}

	if c.StatusPresent && statusAlternates(cleaned) {
		if len(cleaned) == 4 &&
			cleaned[0].Status == punch.StatusEntry &&
			cleaned[1].Status == punch.StatusExit &&
			cleaned[2].Status == punch.StatusEntry &&
			cleaned[3].Status == punch.StatusExit {
			shift1 := cleaned[1].Time.Sub(cleaned[0].Time)
			break1 := cleaned[2].Time.Sub(cleaned[1].Time)
			shift2 := cleaned[3].Time.Sub(cleaned[2].Time)
			return shift1 + shift2, break1, shift.PatternTwoShifts
		}

		for i := 0; i < len(cleaned)-1; i++ {
			interval := cleaned[i+1].Time.Sub(cleaned[i].Time)
			switch {
			case cleaned[i].IsEntry() && cleaned[i+1].IsExit():
				shiftDur += interval
			case cleaned[i].IsExit() && cleaned[i+1].IsEntry():
				breakDur += interval
			}
		}
		if shiftDur > 0 || breakDur > 0 {
			return shiftDur, breakDur, shift.PatternClassified
		}
		shiftDur, breakDur = 0, 0
	}

	if len(cleaned) >= 4 {
		// No usable labels: read punches 1-2 and 3-4 as shifts with the
		// 2-3 gap as the break; anything beyond the 4th stays
		// unclassified.
		shift1 := cleaned[1].Time.Sub(cleaned[0].Time)
		break1 := cleaned[2].Time.Sub(cleaned[1].Time)
		shift2 := cleaned[3].Time.Sub(cleaned[2].Time)
		return shift1 + shift2, break1, shift.PatternInferredPairs
	}

	total := cleaned[len(cleaned)-1].Time.Sub(cleaned[0].Time)
	return total, 0, shift.PatternTotalPresence
}

func statusAlternates(punches []punch.Punch) bool {
	for i := 0; i < len(punches)-1; i++ {
		if punches[i].Status != punches[i+1].Status {
			return true
		}
	}
	return false
}
