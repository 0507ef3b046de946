package recon

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// Deviation from the location's standard shift hours beyond which a day is
// flagged as unusually long or short.
const unusualShiftTolerance = 0.25

// Engine builds daily shift records for a whole batch. Employees are
// independent of one another; each one's stages run strictly in sequence.
type Engine struct {
	resolver rules.Resolver
}

func NewEngine(resolver rules.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// BuildDayRecords groups the batch per employee, dispatches the calculator
// from the rules at the employee's first location, and applies the
// post-midnight attribution pass. Day-level thresholds are re-resolved from
// each day's own source location, so a multi-site employee is measured
// against the rules of wherever they actually punched that day.
func (e *Engine) BuildDayRecords(company string, punches []punch.Punch, statusPresent bool) []shift.DayRecord {
	if len(punches) == 0 {
		return nil
	}

	sorted := append([]punch.Punch(nil), punches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EmployeeID != sorted[j].EmployeeID {
			return sorted[i].EmployeeID < sorted[j].EmployeeID
		}
		return sorted[i].Time.Before(sorted[j].Time)
	})

	datasetMin := sorted[0].Time
	for _, p := range sorted {
		if p.Time.Before(datasetMin) {
			datasetMin = p.Time
		}
	}

	// Earliest punch per employee per original calendar day, for the
	// post-midnight attribution pass.
	firstByDay := make(map[string]map[time.Time]time.Time)
	for _, p := range sorted {
		day := dateutil.Day(p.Time)
		if firstByDay[p.EmployeeID] == nil {
			firstByDay[p.EmployeeID] = make(map[time.Time]time.Time)
		}
		if cur, ok := firstByDay[p.EmployeeID][day]; !ok || p.Time.Before(cur) {
			firstByDay[p.EmployeeID][day] = p.Time
		}
	}

	lookup := func(employeeID, source string) rules.RuleSet {
		return e.resolver.Resolve(company, employeeID, source)
	}

	var out []shift.DayRecord
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].EmployeeID == sorted[start].EmployeeID {
			end++
		}
		emp := sorted[start:end]

		rs := lookup(emp[0].EmployeeID, emp[0].Source)
		calc := CalculatorFor(rs, statusPresent, lookup)
		records := calc.DayRecords(emp, rs, datasetMin)

		for i := range records {
			rec := &records[i]
			rec.PostMidnightMoreT = postMidnightSpan(firstByDay[rec.EmployeeID], rec.LogicalDate)
			rec.Unusual = unusualFlag(rec.ShiftDuration, lookup(rec.EmployeeID, rec.SourceLocation))
		}
		out = append(out, records...)
		start = end
	}
	return out
}

// postMidnightSpan attributes the stretch between midnight and the next
// day's first punch back to this record's day, when that punch lands in
// the 00:00-01:00 window.
func postMidnightSpan(firstByDay map[time.Time]time.Time, logicalDate time.Time) time.Duration {
	if firstByDay == nil {
		return 0
	}
	nextDay := logicalDate.AddDate(0, 0, 1)
	first, ok := firstByDay[nextDay]
	if !ok || first.Hour() != 0 {
		return 0
	}
	return first.Sub(nextDay)
}

func unusualFlag(d time.Duration, rs rules.RuleSet) shift.UnusualFlag {
	if d <= 0 || rs.StandardShiftHours <= 0 {
		return shift.UnusualNone
	}
	ratio := d.Hours() / rs.StandardShiftHours
	switch {
	case ratio > 1+unusualShiftTolerance:
		return shift.UnusualLong
	case ratio < 1-unusualShiftTolerance:
		return shift.UnusualShort
	default:
		return shift.UnusualNone
	}
}
