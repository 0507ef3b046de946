package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

// locationStats aggregates the day records per source location. The
// absenteeism rate is computed from the employees whose primary location
// is that location: final absences over final absences plus present days.
func locationStats(records []shift.DayRecord, summaries []summary.EmployeeSummary) []summary.LocationStats {
	type acc struct {
		employees   map[string]bool
		punchDays   int
		totalShift  time.Duration
		shiftDays   int
		singlePunch int
	}

	byLoc := make(map[string]*acc)
	for _, rec := range records {
		if rec.SourceLocation == "" {
			continue
		}
		a, ok := byLoc[rec.SourceLocation]
		if !ok {
			a = &acc{employees: make(map[string]bool)}
			byLoc[rec.SourceLocation] = a
		}
		a.employees[rec.EmployeeID] = true
		a.punchDays++
		a.totalShift += rec.ShiftDuration
		if rec.ShiftDuration > 0 {
			a.shiftDays++
		}
		if rec.Pattern == shift.PatternSinglePunch {
			a.singlePunch++
		}
	}

	type absenteeism struct{ absent, present int }
	byPrimary := make(map[string]*absenteeism)
	for _, s := range summaries {
		if s.PrimaryLocation == "" {
			continue
		}
		b, ok := byPrimary[s.PrimaryLocation]
		if !ok {
			b = &absenteeism{}
			byPrimary[s.PrimaryLocation] = b
		}
		b.absent += s.FinalAbsentDaysAfterPending
		b.present += s.TotalPresentDays
	}

	out := make([]summary.LocationStats, 0, len(byLoc))
	for loc, a := range byLoc {
		stats := summary.LocationStats{
			Location:   loc,
			Employees:  len(a.employees),
			PunchDays:  a.punchDays,
			TotalShift: a.totalShift,
		}
		if a.shiftDays > 0 {
			stats.AverageShift = a.totalShift / time.Duration(a.shiftDays)
		}
		if a.punchDays > 0 {
			stats.SinglePunchRate = float64(a.singlePunch) / float64(a.punchDays)
			stats.MultiPunchRate = 1 - stats.SinglePunchRate
		}
		if b, ok := byPrimary[loc]; ok && b.absent+b.present > 0 {
			stats.AbsenteeismRate = float64(b.absent) / float64(b.absent+b.present)
		}
		out = append(out, stats)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

// absenceStreaks finds each employee's longest run of consecutive final
// absent dates. Runs of a single day are not reported.
func absenceStreaks(summaries []summary.EmployeeSummary) []summary.AbsenceStreak {
	var out []summary.AbsenceStreak
	for _, s := range summaries {
		streak := longestRun(s.FinalAbsentDatesAfterPending)
		if streak.Length < 2 {
			continue
		}
		streak.EmployeeID = s.EmployeeID
		out = append(out, streak)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

func longestRun(dates []time.Time) summary.AbsenceStreak {
	var best, cur summary.AbsenceStreak
	for i, d := range dates {
		if i > 0 && d.Sub(dates[i-1]) == 24*time.Hour {
			cur.Length++
			cur.End = d
		} else {
			cur = summary.AbsenceStreak{Length: 1, Start: d, End: d}
		}
		if cur.Length > best.Length {
			best = cur
		}
	}
	return best
}
