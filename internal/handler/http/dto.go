package http

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// Wire DTOs for the run endpoint. Durations are rendered as HH:MM:SS and
// dates as ISO strings, matching the workbook output.

type runResponse struct {
	RunID       string          `json:"run_id"`
	Company     string          `json:"company"`
	Start       string          `json:"start"`
	End         string          `json:"end"`
	DayRecords  []dayRecordDTO  `json:"day_records"`
	Summaries   []summaryDTO    `json:"summaries"`
	Adjustments []adjustmentDTO `json:"adjustments"`
	Locations   []locationDTO   `json:"locations"`
	Streaks     []streakDTO     `json:"absence_streaks"`
	Diagnostics []diag.Entry    `json:"diagnostics"`
}

type dayRecordDTO struct {
	EmployeeID         string `json:"employee_id"`
	Name               string `json:"name"`
	Date               string `json:"date"`
	Location           string `json:"location"`
	PunchCountOriginal int    `json:"punch_count_original"`
	PunchCountCleaned  int    `json:"punch_count_cleaned"`
	FirstPunch         string `json:"first_punch"`
	LastPunch          string `json:"last_punch"`
	Shift              string `json:"shift"`
	Break              string `json:"break"`
	MoreT              string `json:"more_t"`
	ShortT             string `json:"short_t"`
	PostMidnightMoreT  string `json:"post_midnight_more_t,omitempty"`
	Pattern            string `json:"pattern"`
	OpenShift          bool   `json:"open_shift,omitempty"`
	FixedBreakDeducted bool   `json:"fixed_break_deducted,omitempty"`
	Unusual            string `json:"unusual,omitempty"`
}

type summaryDTO struct {
	EmployeeID      string   `json:"employee_id"`
	Name            string   `json:"name"`
	PrimaryLocation string   `json:"primary_location"`
	SourceLocations []string `json:"source_locations"`

	PunchStart string `json:"punch_start,omitempty"`
	PunchEnd   string `json:"punch_end,omitempty"`

	TotalPresentDays    int     `json:"total_present_days"`
	SinglePunchDays     int     `json:"single_punch_days"`
	OpenShiftDays       int     `json:"open_shift_days"`
	ExpectedWorkingDays float64 `json:"expected_working_days"`
	ExpectedWeekendDays float64 `json:"expected_weekend_days"`
	PeriodOffDays       float64 `json:"period_off_days"`

	TotalShift        string `json:"total_shift"`
	TotalBreak        string `json:"total_break"`
	TotalMoreT        string `json:"total_more_t"`
	TotalShortT       string `json:"total_short_t"`
	TotalPostMidnight string `json:"total_post_midnight"`
	AverageShift      string `json:"average_shift"`
	MoreTDays         int    `json:"more_t_days"`
	ShortTDays        int    `json:"short_t_days"`

	AbsentDates []string `json:"absent_dates"`
	AbsentDays  int      `json:"absent_days"`

	ExcusedDates     []string `json:"excused_dates"`
	ExcusedTotal     int      `json:"excused_total"`
	FinalAbsentDates []string `json:"final_absent_dates"`
	FinalAbsentDays  int      `json:"final_absent_days"`

	PendingOffCredit             string   `json:"pending_off_credit"`
	PendingOffDates              []string `json:"pending_off_dates"`
	UnusedPendingOff             string   `json:"unused_pending_off"`
	FinalAbsentDatesAfterPending []string `json:"final_absent_dates_after_pending"`
	FinalAbsentDaysAfterPending  int      `json:"final_absent_days_after_pending"`
}

type adjustmentDTO struct {
	EmployeeID   string   `json:"employee_id"`
	Stage        string   `json:"stage"`
	Category     string   `json:"category"`
	WindowStart  string   `json:"window_start,omitempty"`
	WindowEnd    string   `json:"window_end,omitempty"`
	ExcusedDates []string `json:"excused_dates"`
	ExcusedDays  int      `json:"excused_days"`
}

type locationDTO struct {
	Location        string  `json:"location"`
	Employees       int     `json:"employees"`
	PunchDays       int     `json:"punch_days"`
	TotalShift      string  `json:"total_shift"`
	AverageShift    string  `json:"average_shift"`
	SinglePunchRate float64 `json:"single_punch_rate"`
	MultiPunchRate  float64 `json:"multi_punch_rate"`
	AbsenteeismRate float64 `json:"absenteeism_rate"`
}

type streakDTO struct {
	EmployeeID string `json:"employee_id"`
	Length     int    `json:"length"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func toRunResponse(result report.RunResult) runResponse {
	resp := runResponse{
		RunID:       result.RunID,
		Company:     result.Company,
		Start:       dateutil.ISO(result.Start),
		End:         dateutil.ISO(result.End),
		Diagnostics: result.Diagnostics,
	}

	for _, rec := range result.DayRecords {
		resp.DayRecords = append(resp.DayRecords, toDayRecordDTO(rec))
	}
	for _, s := range result.Summaries {
		resp.Summaries = append(resp.Summaries, toSummaryDTO(s))
	}
	for _, a := range result.Adjustments {
		resp.Adjustments = append(resp.Adjustments, toAdjustmentDTO(a))
	}
	for _, l := range result.Locations {
		resp.Locations = append(resp.Locations, locationDTO{
			Location:        l.Location,
			Employees:       l.Employees,
			PunchDays:       l.PunchDays,
			TotalShift:      shift.FormatDuration(l.TotalShift),
			AverageShift:    shift.FormatDuration(l.AverageShift),
			SinglePunchRate: l.SinglePunchRate,
			MultiPunchRate:  l.MultiPunchRate,
			AbsenteeismRate: l.AbsenteeismRate,
		})
	}
	for _, s := range result.Streaks {
		resp.Streaks = append(resp.Streaks, streakDTO{
			EmployeeID: s.EmployeeID,
			Length:     s.Length,
			Start:      dateutil.ISO(s.Start),
			End:        dateutil.ISO(s.End),
		})
	}
	return resp
}

func toDayRecordDTO(rec shift.DayRecord) dayRecordDTO {
	dto := dayRecordDTO{
		EmployeeID:         rec.EmployeeID,
		Name:               rec.Name,
		Date:               dateutil.ISO(rec.LogicalDate),
		Location:           rec.SourceLocation,
		PunchCountOriginal: rec.PunchCountOriginal,
		PunchCountCleaned:  rec.PunchCountCleaned,
		FirstPunch:         rec.FirstPunch.Format("15:04:05"),
		LastPunch:          rec.LastPunch.Format("15:04:05"),
		Shift:              shift.FormatDuration(rec.ShiftDuration),
		Break:              shift.FormatDuration(rec.BreakDuration),
		MoreT:              shift.FormatDuration(rec.MoreT),
		ShortT:             shift.FormatDuration(rec.ShortT),
		Pattern:            string(rec.Pattern),
		OpenShift:          rec.OpenShift,
		FixedBreakDeducted: rec.FixedBreakDeducted,
		Unusual:            string(rec.Unusual),
	}
	if rec.PostMidnightMoreT > 0 {
		dto.PostMidnightMoreT = shift.FormatDuration(rec.PostMidnightMoreT)
	}
	return dto
}

func toSummaryDTO(s summary.EmployeeSummary) summaryDTO {
	dto := summaryDTO{
		EmployeeID:      s.EmployeeID,
		Name:            s.Name,
		PrimaryLocation: s.PrimaryLocation,
		SourceLocations: s.SourceLocations,

		TotalPresentDays:    s.TotalPresentDays,
		SinglePunchDays:     s.SinglePunchDays,
		OpenShiftDays:       s.OpenShiftDays,
		ExpectedWorkingDays: s.ExpectedWorkingDays,
		ExpectedWeekendDays: s.ExpectedWeekendDays,
		PeriodOffDays:       s.PeriodOffDays,

		TotalShift:        shift.FormatDuration(s.TotalShift),
		TotalBreak:        shift.FormatDuration(s.TotalBreak),
		TotalMoreT:        shift.FormatDuration(s.TotalMoreT),
		TotalShortT:       shift.FormatDuration(s.TotalShortT),
		TotalPostMidnight: shift.FormatDuration(s.TotalPostMidnight),
		AverageShift:      shift.FormatDuration(s.AverageShiftDuration),
		MoreTDays:         s.MoreTDays,
		ShortTDays:        s.ShortTDays,

		AbsentDates: dateutil.ISOList(s.AbsentDates),
		AbsentDays:  s.AbsentDays,

		ExcusedDates:     dateutil.ISOList(s.ExcusedDates),
		ExcusedTotal:     s.ExcusedTotal,
		FinalAbsentDates: dateutil.ISOList(s.FinalAbsentDates),
		FinalAbsentDays:  s.FinalAbsentDays,

		PendingOffCredit:             s.PendingOffCredit.String(),
		PendingOffDates:              dateutil.ISOList(s.PendingOffDates),
		UnusedPendingOff:             s.UnusedPendingOff.String(),
		FinalAbsentDatesAfterPending: dateutil.ISOList(s.FinalAbsentDatesAfterPending),
		FinalAbsentDaysAfterPending:  s.FinalAbsentDaysAfterPending,
	}
	if !s.PunchStart.IsZero() {
		dto.PunchStart = s.PunchStart.Format("2006-01-02 15:04:05")
	}
	if !s.PunchEnd.IsZero() {
		dto.PunchEnd = s.PunchEnd.Format("2006-01-02 15:04:05")
	}
	return dto
}

func toAdjustmentDTO(a summary.AdjustmentDetail) adjustmentDTO {
	dto := adjustmentDTO{
		EmployeeID:   a.EmployeeID,
		Stage:        a.Stage,
		Category:     a.Category,
		ExcusedDates: dateutil.ISOList(a.ExcusedDates),
		ExcusedDays:  a.ExcusedDays,
	}
	if !a.WindowStart.IsZero() {
		dto.WindowStart = dateutil.ISO(a.WindowStart)
	}
	if !a.WindowEnd.IsZero() {
		dto.WindowEnd = dateutil.ISO(a.WindowEnd)
	}
	return dto
}
