package adjust

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

// Detail category for dates excused because they fall outside the
// employee's effective employment window.
const categoryEmploymentWindow = "employment_window"

// LeaveResult is the outcome of the leave stage for one employee. The date
// lists are authoritative; FinalAbsentDays is always len(FinalAbsentDates).
type LeaveResult struct {
	WindowStart      time.Time
	WindowEnd        time.Time
	ExcusedDates     []time.Time
	FinalAbsentDates []time.Time
	Details          []summary.AdjustmentDetail
}

// LeaveStage removes HR-approved leave from an employee's baseline absent
// dates. Employment-window markers narrow the window first, then excusing
// records remove dates inside it. Applying the stage twice to its own
// output removes nothing further.
type LeaveStage struct{}

// Apply runs the stage for one employee. records is that employee's slice
// of the HR workbook; baseline must be sorted ascending.
func (LeaveStage) Apply(employeeID string, windowStart, windowEnd time.Time, baseline []time.Time, records []leave.Record) LeaveResult {
	start, end := effectiveWindow(windowStart, windowEnd, records)
	res := LeaveResult{WindowStart: start, WindowEnd: end}

	if start.After(end) {
		// The employee was not employed at any point in the window.
		res.ExcusedDates = append([]time.Time(nil), baseline...)
		if len(baseline) > 0 {
			res.Details = append(res.Details, detail(employeeID, categoryEmploymentWindow, start, end, baseline))
		}
		return res
	}

	var remaining, outside []time.Time
	for _, d := range baseline {
		if d.Before(start) || d.After(end) {
			outside = append(outside, d)
		} else {
			remaining = append(remaining, d)
		}
	}
	if len(outside) > 0 {
		res.ExcusedDates = append(res.ExcusedDates, outside...)
		res.Details = append(res.Details, detail(employeeID, categoryEmploymentWindow, start, end, outside))
	}

	for _, r := range records {
		if !r.Category.Excuses() {
			continue
		}

		var excused []time.Time
		if r.HasDates {
			remaining, excused = removeRange(remaining, r.StartDate, r.EndDate)
		} else if n := int(r.Days); n > 0 {
			remaining, excused = removeEarliest(remaining, n)
		}
		if len(excused) == 0 {
			continue
		}
		res.ExcusedDates = append(res.ExcusedDates, excused...)
		res.Details = append(res.Details, summary.AdjustmentDetail{
			EmployeeID:   employeeID,
			Stage:        summary.StageLeave,
			Category:     string(r.Category),
			WindowStart:  r.StartDate,
			WindowEnd:    r.EndDate,
			ExcusedDates: excused,
			ExcusedDays:  len(excused),
		})
	}

	sort.Slice(res.ExcusedDates, func(i, j int) bool { return res.ExcusedDates[i].Before(res.ExcusedDates[j]) })
	res.FinalAbsentDates = remaining
	return res
}

// effectiveWindow narrows the reporting window with employment markers: the
// latest hire/return date moves the start forward, the earliest
// stop-working date moves the end back.
func effectiveWindow(start, end time.Time, records []leave.Record) (time.Time, time.Time) {
	for _, r := range records {
		switch r.Category {
		case leave.CategoryNewHire, leave.CategoryReturn:
			if r.HasDates && r.StartDate.After(start) {
				start = r.StartDate
			}
		case leave.CategoryStopWorking:
			if r.HasDates && r.EndDate.Before(end) {
				end = r.EndDate
			}
		}
	}
	return start, end
}

func detail(employeeID, category string, start, end time.Time, dates []time.Time) summary.AdjustmentDetail {
	return summary.AdjustmentDetail{
		EmployeeID:   employeeID,
		Stage:        summary.StageLeave,
		Category:     category,
		WindowStart:  start,
		WindowEnd:    end,
		ExcusedDates: append([]time.Time(nil), dates...),
		ExcusedDays:  len(dates),
	}
}

func removeRange(dates []time.Time, start, end time.Time) (kept, removed []time.Time) {
	for _, d := range dates {
		if !d.Before(start) && !d.After(end) {
			removed = append(removed, d)
		} else {
			kept = append(kept, d)
		}
	}
	return kept, removed
}

func removeEarliest(dates []time.Time, n int) (kept, removed []time.Time) {
	if n >= len(dates) {
		return nil, dates
	}
	return dates[n:], dates[:n]
}
