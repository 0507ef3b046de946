package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	domainReport "github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// Workbook renders a run result as an xlsx workbook, one sheet per output
// family. Durations are written as HH:MM:SS strings so the sheets match
// what the API returns.
func (s *reportService) Workbook(ctx context.Context, result domainReport.RunResult) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("workbook header style: %w", err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{"Daily Records", dailyHeaders, dailyRows(result.DayRecords)},
		{"Summary", summaryHeaders, summaryRows(result)},
		{"Adjustments", adjustmentHeaders, adjustmentRows(result)},
		{"Pending Offs", pendingHeaders, pendingRows(result)},
		{"Locations", locationHeaders, locationRows(result)},
		{"Absence Streaks", streakHeaders, streakRows(result)},
		{"Diagnostics", diagnosticHeaders, diagnosticRows(result)},
	}

	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.headers, sh.rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("workbook delete default sheet: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("workbook write: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("workbook close: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, headers []string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
		if err := f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("sheet %s header %s: %w", name, h, err)
		}
		if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("sheet %s header style: %w", name, err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", name, err)
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, i+2, err)
			}
		}
	}
	return nil
}

var dailyHeaders = []string{
	"Employee ID", "Name", "Date", "Location", "Punches (raw)", "Punches (cleaned)",
	"First Punch", "Last Punch", "Shift", "Break", "MoreT", "ShortT",
	"Post-Midnight", "Pattern", "Flags",
}

func dailyRows(records []shift.DayRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{
			rec.EmployeeID, rec.Name, dateutil.ISO(rec.LogicalDate), rec.SourceLocation,
			rec.PunchCountOriginal, rec.PunchCountCleaned,
			rec.FirstPunch.Format("15:04:05"), rec.LastPunch.Format("15:04:05"),
			shift.FormatDuration(rec.ShiftDuration), shift.FormatDuration(rec.BreakDuration),
			shift.FormatDuration(rec.MoreT), shift.FormatDuration(rec.ShortT),
			shift.FormatDuration(rec.PostMidnightMoreT), string(rec.Pattern),
			recordFlags(rec),
		})
	}
	return rows
}

func recordFlags(rec shift.DayRecord) string {
	var flags []string
	if rec.OpenShift {
		flags = append(flags, "open shift")
	}
	if rec.FixedBreakDeducted {
		flags = append(flags, "fixed break")
	}
	if rec.Unusual != shift.UnusualNone {
		flags = append(flags, "unusual "+string(rec.Unusual))
	}
	return strings.Join(flags, ", ")
}

var summaryHeaders = []string{
	"Employee ID", "Name", "Primary Location", "Locations",
	"Present Days", "Single Punch Days", "Open Shift Days",
	"Expected Working Days", "Expected Weekend Days", "Period Off Days",
	"Total Shift", "Total Break", "Total MoreT", "Total ShortT", "Avg Shift",
	"Absent Days", "Excused Days", "Final Absent Days",
	"Pending Credit", "Pending Dates", "Unused Credit", "Final After Pending",
	"Final Absent Dates",
}

func summaryRows(result domainReport.RunResult) [][]any {
	rows := make([][]any, 0, len(result.Summaries))
	for _, s := range result.Summaries {
		rows = append(rows, []any{
			s.EmployeeID, s.Name, s.PrimaryLocation, strings.Join(s.SourceLocations, ", "),
			s.TotalPresentDays, s.SinglePunchDays, s.OpenShiftDays,
			s.ExpectedWorkingDays, s.ExpectedWeekendDays, s.PeriodOffDays,
			shift.FormatDuration(s.TotalShift), shift.FormatDuration(s.TotalBreak),
			shift.FormatDuration(s.TotalMoreT), shift.FormatDuration(s.TotalShortT),
			shift.FormatDuration(s.AverageShiftDuration),
			s.AbsentDays, s.ExcusedTotal, s.FinalAbsentDays,
			s.PendingOffCredit.String(), strings.Join(dateutil.ISOList(s.PendingOffDates), ", "),
			s.UnusedPendingOff.String(), s.FinalAbsentDaysAfterPending,
			strings.Join(dateutil.ISOList(s.FinalAbsentDatesAfterPending), ", "),
		})
	}
	return rows
}

var adjustmentHeaders = []string{
	"Employee ID", "Stage", "Category", "Window Start", "Window End", "Excused Days", "Excused Dates",
}

func adjustmentRows(result domainReport.RunResult) [][]any {
	rows := make([][]any, 0, len(result.Adjustments))
	for _, a := range result.Adjustments {
		start, end := "", ""
		if !a.WindowStart.IsZero() {
			start = dateutil.ISO(a.WindowStart)
		}
		if !a.WindowEnd.IsZero() {
			end = dateutil.ISO(a.WindowEnd)
		}
		rows = append(rows, []any{
			a.EmployeeID, a.Stage, a.Category, start, end,
			a.ExcusedDays, strings.Join(dateutil.ISOList(a.ExcusedDates), ", "),
		})
	}
	return rows
}

var pendingHeaders = []string{
	"Employee ID", "Name", "Credit", "Pending Dates",
	"Unused Credit", "Final After Pending",
}

func pendingRows(result domainReport.RunResult) [][]any {
	var rows [][]any
	for _, s := range result.Summaries {
		if s.PendingOffCredit.IsZero() && len(s.PendingOffDates) == 0 {
			continue
		}
		rows = append(rows, []any{
			s.EmployeeID, s.Name, s.PendingOffCredit.String(),
			strings.Join(dateutil.ISOList(s.PendingOffDates), ", "),
			s.UnusedPendingOff.String(), s.FinalAbsentDaysAfterPending,
		})
	}
	return rows
}

var locationHeaders = []string{
	"Location", "Employees", "Punch Days", "Total Shift", "Avg Shift",
	"Single Punch Rate", "Multi Punch Rate", "Absenteeism Rate",
}

func locationRows(result domainReport.RunResult) [][]any {
	rows := make([][]any, 0, len(result.Locations))
	for _, l := range result.Locations {
		rows = append(rows, []any{
			l.Location, l.Employees, l.PunchDays,
			shift.FormatDuration(l.TotalShift), shift.FormatDuration(l.AverageShift),
			l.SinglePunchRate, l.MultiPunchRate, l.AbsenteeismRate,
		})
	}
	return rows
}

var streakHeaders = []string{"Employee ID", "Length", "Start", "End"}

func streakRows(result domainReport.RunResult) [][]any {
	rows := make([][]any, 0, len(result.Streaks))
	for _, s := range result.Streaks {
		rows = append(rows, []any{s.EmployeeID, s.Length, dateutil.ISO(s.Start), dateutil.ISO(s.End)})
	}
	return rows
}

var diagnosticHeaders = []string{"Context", "Message"}

func diagnosticRows(result domainReport.RunResult) [][]any {
	rows := make([][]any, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		rows = append(rows, []any{d.Context, d.Message})
	}
	return rows
}
