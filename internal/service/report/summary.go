package report

import (
	"time"

	domainReport "github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/recon"
)

// buildSummary aggregates one employee's day records over the reporting
// window and enumerates the baseline absent dates. The adjustment stages
// fill in the remaining fields afterwards.
func buildSummary(req domainReport.RunRequest, emp employeeGroup, rs rules.RuleSet) summary.EmployeeSummary {
	sum := summary.EmployeeSummary{
		EmployeeID:      emp.id,
		Name:            emp.name,
		SourceLocations: emp.locations,
		PrimaryLocation: emp.primaryLocation,
		WindowStart:     req.Start,
		WindowEnd:       req.End,
	}

	present := make(map[time.Time]bool)
	shiftDays := 0
	for _, rec := range emp.records {
		if sum.PunchStart.IsZero() || rec.FirstPunch.Before(sum.PunchStart) {
			sum.PunchStart = rec.FirstPunch
		}
		if rec.LastPunch.After(sum.PunchEnd) {
			sum.PunchEnd = rec.LastPunch
		}

		if rec.Present() {
			present[rec.LogicalDate] = true
			sum.TotalPresentDays++
		}
		if rec.ShiftDuration > 0 {
			shiftDays++
		}

		sum.TotalShift += rec.ShiftDuration
		sum.TotalBreak += rec.BreakDuration
		sum.TotalMoreT += rec.MoreT
		sum.TotalShortT += rec.ShortT
		sum.TotalPostMidnight += rec.PostMidnightMoreT

		if rec.Pattern == shift.PatternSinglePunch {
			sum.SinglePunchDays++
		}
		if rec.OpenShift {
			sum.OpenShiftDays++
		}
		if rec.IsMoreTDay {
			sum.MoreTDays++
		}
		if rec.IsShortTDay {
			sum.ShortTDays++
		}
	}
	if shiftDays > 0 {
		sum.AverageShiftDuration = sum.TotalShift / time.Duration(shiftDays)
	}

	totalDays := float64(dateutil.DaysBetween(req.Start, req.End))
	sum.ExpectedWorkingDays = recon.ExpectedWorkingDays(req.Start, req.End, rs)
	sum.ExpectedWeekendDays = totalDays - sum.ExpectedWorkingDays
	// Every policy grants at least one off per week; a rule set with no
	// configured rest still reports that floor.
	if minWeekends := totalDays / 7; sum.ExpectedWeekendDays < minWeekends {
		sum.ExpectedWeekendDays = minWeekends
	}
	// Offs are counted over the employee's own punch window, not the full
	// reporting window, so late hires are not charged rest days they were
	// never scheduled for.
	offStart, offEnd := req.Start, req.End
	if !sum.PunchStart.IsZero() {
		offStart, offEnd = dateutil.Day(sum.PunchStart), dateutil.Day(sum.PunchEnd)
	}
	sum.PeriodOffDays = periodOffDays(offStart, offEnd, rs)

	sum.AbsentDates = recon.AbsentDates(req.Start, req.End, present, nil, rs)
	sum.AbsentDays = len(sum.AbsentDates)
	return sum
}

// periodOffDays is the number of scheduled off days in the window. For
// rotational policies it is the weekly quota prorated over the window;
// otherwise it is the count of calendar rest days.
func periodOffDays(start, end time.Time, rs rules.RuleSet) float64 {
	totalDays := float64(dateutil.DaysBetween(start, end))
	if rs.IsRotationalOff {
		return totalDays * float64(rs.RotationalOffsPerWeek) / 7.0
	}

	offs := 0.0
	for d := dateutil.Day(start); !d.After(dateutil.Day(end)); d = d.AddDate(0, 0, 1) {
		if recon.IsRestDay(d, rs) {
			offs++
		}
	}
	return offs
}
