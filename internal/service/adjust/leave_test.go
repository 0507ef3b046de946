package adjust

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseISO(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func days(t *testing.T, ss ...string) []time.Time {
	out := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		out = append(out, day(t, s))
	}
	return out
}

func TestLeaveStageRangeRecordExcusesOverlap(t *testing.T) {
	baseline := days(t, "2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09")
	records := []leave.Record{{
		EmployeeID: "100",
		Category:   leave.CategorySick,
		StartDate:  day(t, "2025-01-07"),
		EndDate:    day(t, "2025-01-08"),
		HasDates:   true,
	}}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Equal(t, []string{"2025-01-06", "2025-01-09"}, dateutil.ISOList(got.FinalAbsentDates))
	assert.Equal(t, []string{"2025-01-07", "2025-01-08"}, dateutil.ISOList(got.ExcusedDates))
	require.Len(t, got.Details, 1)
	assert.Equal(t, string(leave.CategorySick), got.Details[0].Category)
	assert.Equal(t, 2, got.Details[0].ExcusedDays)
}

func TestLeaveStageNumericDaysExcuseEarliest(t *testing.T) {
	baseline := days(t, "2025-01-06", "2025-01-09", "2025-01-13")
	records := []leave.Record{{
		EmployeeID: "100",
		Category:   leave.CategoryEmergency,
		Days:       2,
	}}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Equal(t, []string{"2025-01-13"}, dateutil.ISOList(got.FinalAbsentDates))
	assert.Equal(t, []string{"2025-01-06", "2025-01-09"}, dateutil.ISOList(got.ExcusedDates))
}

func TestLeaveStageWindowMarkersNarrowWindow(t *testing.T) {
	baseline := days(t, "2025-01-02", "2025-01-08", "2025-01-15", "2025-01-28")
	records := []leave.Record{
		{EmployeeID: "100", Category: leave.CategoryNewHire, StartDate: day(t, "2025-01-06"), EndDate: day(t, "2025-01-06"), HasDates: true},
		{EmployeeID: "100", Category: leave.CategoryStopWorking, StartDate: day(t, "2025-01-20"), EndDate: day(t, "2025-01-20"), HasDates: true},
	}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Equal(t, day(t, "2025-01-06"), got.WindowStart)
	assert.Equal(t, day(t, "2025-01-20"), got.WindowEnd)
	assert.Equal(t, []string{"2025-01-08", "2025-01-15"}, dateutil.ISOList(got.FinalAbsentDates))
	assert.Equal(t, []string{"2025-01-02", "2025-01-28"}, dateutil.ISOList(got.ExcusedDates))
	require.NotEmpty(t, got.Details)
	assert.Equal(t, categoryEmploymentWindow, got.Details[0].Category)
}

func TestLeaveStageLatestStartMarkerWins(t *testing.T) {
	baseline := days(t, "2025-01-05", "2025-01-12")
	records := []leave.Record{
		{EmployeeID: "100", Category: leave.CategoryNewHire, StartDate: day(t, "2025-01-03"), HasDates: true},
		{EmployeeID: "100", Category: leave.CategoryReturn, StartDate: day(t, "2025-01-10"), HasDates: true},
	}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Equal(t, day(t, "2025-01-10"), got.WindowStart)
	assert.Equal(t, []string{"2025-01-12"}, dateutil.ISOList(got.FinalAbsentDates))
}

func TestLeaveStageInvertedWindowExcusesEverything(t *testing.T) {
	baseline := days(t, "2025-01-05", "2025-01-12")
	records := []leave.Record{
		{EmployeeID: "100", Category: leave.CategoryNewHire, StartDate: day(t, "2025-01-25"), HasDates: true},
		{EmployeeID: "100", Category: leave.CategoryStopWorking, EndDate: day(t, "2025-01-10"), HasDates: true},
	}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Empty(t, got.FinalAbsentDates)
	assert.Len(t, got.ExcusedDates, 2)
	require.Len(t, got.Details, 1)
	assert.Equal(t, categoryEmploymentWindow, got.Details[0].Category)
}

func TestLeaveStageIdempotent(t *testing.T) {
	baseline := days(t, "2025-01-06", "2025-01-07", "2025-01-08")
	records := []leave.Record{{
		EmployeeID: "100",
		Category:   leave.CategoryVacation,
		StartDate:  day(t, "2025-01-07"),
		EndDate:    day(t, "2025-01-07"),
		HasDates:   true,
	}}

	first := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)
	second := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), first.FinalAbsentDates, records)

	assert.Equal(t, dateutil.ISOList(first.FinalAbsentDates), dateutil.ISOList(second.FinalAbsentDates))
	assert.Empty(t, second.ExcusedDates)
}

func TestLeaveStageMarkerRecordsNeverExcuseDirectly(t *testing.T) {
	baseline := days(t, "2025-01-06")
	records := []leave.Record{{
		EmployeeID: "100",
		Category:   leave.CategoryReturn,
		StartDate:  day(t, "2025-01-02"),
		HasDates:   true,
	}}

	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, records)

	assert.Equal(t, []string{"2025-01-06"}, dateutil.ISOList(got.FinalAbsentDates))
	assert.Empty(t, got.ExcusedDates)
}

func TestLeaveStageDerivedCountMatchesList(t *testing.T) {
	baseline := days(t, "2025-01-06", "2025-01-09")
	got := LeaveStage{}.Apply("100", day(t, "2025-01-01"), day(t, "2025-01-31"), baseline, nil)

	assert.Len(t, got.FinalAbsentDates, 2)
	var total int
	for _, d := range got.Details {
		total += d.ExcusedDays
		assert.Equal(t, summary.StageLeave, d.Stage)
	}
	assert.Equal(t, len(got.ExcusedDates), total)
}
