package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	domainReport "github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/adjust"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/recon"
)

type stubResolver struct {
	rs rules.RuleSet
}

func (s stubResolver) Resolve(company, employeeID, sourceLocation string) rules.RuleSet {
	return s.rs
}

func (s stubResolver) Profiles() []rules.CompanyProfile { return nil }

func testService() domainReport.ReportService {
	resolver := stubResolver{rs: rules.RuleSet{
		StandardShiftHours:  9,
		ShortThresholdHours: 8.5,
		MoreTStartHours:     9,
		MoreTEnabled:        true,
		WeekendDays:         []time.Weekday{time.Friday},
		WeekendRuleType:     rules.WeekendRuleFixed,
	}}
	return NewReportService(resolver, recon.NewEngine(resolver), adjust.RoundFloor)
}

func p(t *testing.T, id, name, loc, clock, status string) punch.Punch {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", clock)
	if err != nil {
		t.Fatalf("parse %q: %v", clock, err)
	}
	return punch.Punch{EmployeeID: id, Name: name, Time: ts, Status: status, Source: loc}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseISO(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestRunRejectsInvalidWindow(t *testing.T) {
	svc := testService()

	_, err := svc.Run(context.Background(), domainReport.RunRequest{
		Company: "Al-hadabah times",
		Start:   day(t, "2025-01-31"),
		End:     day(t, "2025-01-01"),
		Punches: []punch.Punch{p(t, "100", "Omar", "Homz Mall", "2025-01-06 08:00:00", punch.StatusEntry)},
	})

	assert.ErrorIs(t, err, domainReport.ErrInvalidWindow)
}

func TestRunRejectsEmptyBatch(t *testing.T) {
	svc := testService()

	_, err := svc.Run(context.Background(), domainReport.RunRequest{
		Company: "Al-hadabah times",
		Start:   day(t, "2025-01-01"),
		End:     day(t, "2025-01-31"),
	})

	assert.ErrorIs(t, err, domainReport.ErrNoPunchData)
}

func TestRunFullPipeline(t *testing.T) {
	svc := testService()

	req := domainReport.RunRequest{
		Company:       "Al-hadabah times",
		Start:         day(t, "2025-01-06"),
		End:           day(t, "2025-01-12"),
		StatusPresent: true,
		Punches: []punch.Punch{
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 08:00:00", punch.StatusEntry),
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 17:00:00", punch.StatusExit),
			p(t, "100", "Omar", "Homz Mall", "2025-01-07 08:00:00", punch.StatusEntry),
			p(t, "100", "Omar", "Homz Mall", "2025-01-07 17:00:00", punch.StatusExit),
			p(t, "200", "Sara", "Awtad", "2025-01-06 09:00:00", punch.StatusEntry),
			p(t, "200", "Sara", "Awtad", "2025-01-06 18:00:00", punch.StatusExit),
		},
		Leaves: []leave.Record{{
			EmployeeID: "100",
			Category:   leave.CategorySick,
			StartDate:  day(t, "2025-01-08"),
			EndDate:    day(t, "2025-01-09"),
			HasDates:   true,
		}},
		Credits: []summary.PendingOffCredit{{
			EmployeeID: "100",
			Credit:     decimal.NewFromInt(1),
		}},
	}

	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Summaries, 2)

	omar := result.Summaries[0]
	assert.Equal(t, "100", omar.EmployeeID)
	assert.Equal(t, 2, omar.TotalPresentDays)
	// Window 06-12 minus the Friday, minus two present days: 08, 09, 11, 12.
	assert.Equal(t, 4, omar.AbsentDays)
	// Sick leave excuses 08 and 09; pending credit covers the most
	// recent remaining date.
	assert.Equal(t, 2, omar.FinalAbsentDays)
	assert.Equal(t, []string{"2025-01-12"}, dateutil.ISOList(omar.PendingOffDates))
	assert.Equal(t, []string{"2025-01-11"}, dateutil.ISOList(omar.FinalAbsentDatesAfterPending))
	assert.Equal(t, 1, omar.FinalAbsentDaysAfterPending)

	sara := result.Summaries[1]
	assert.Equal(t, "200", sara.EmployeeID)
	assert.Equal(t, 5, sara.FinalAbsentDaysAfterPending)
	assert.True(t, sara.PendingOffCredit.IsZero())

	assert.NotEmpty(t, result.Adjustments)
	require.Len(t, result.Locations, 2)
	assert.Equal(t, "Awtad", result.Locations[0].Location)
}

func TestRunEmitsStreaks(t *testing.T) {
	svc := testService()

	req := domainReport.RunRequest{
		Company:       "Al-hadabah times",
		Start:         day(t, "2025-01-06"),
		End:           day(t, "2025-01-09"),
		StatusPresent: true,
		Punches: []punch.Punch{
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 08:00:00", punch.StatusEntry),
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 17:00:00", punch.StatusExit),
		},
	}

	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	// 07, 08, 09 absent and consecutive.
	require.Len(t, result.Streaks, 1)
	assert.Equal(t, 3, result.Streaks[0].Length)
	assert.Equal(t, day(t, "2025-01-07"), result.Streaks[0].Start)
}

func TestWorkbookRendersAllSheets(t *testing.T) {
	svc := testService()

	result, err := svc.Run(context.Background(), domainReport.RunRequest{
		Company:       "Al-hadabah times",
		Start:         day(t, "2025-01-06"),
		End:           day(t, "2025-01-07"),
		StatusPresent: true,
		Punches: []punch.Punch{
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 08:00:00", punch.StatusEntry),
			p(t, "100", "Omar", "Homz Mall", "2025-01-06 17:00:00", punch.StatusExit),
		},
	})
	require.NoError(t, err)

	data, err := svc.Workbook(context.Background(), result)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{
		"Daily Records", "Summary", "Adjustments", "Pending Offs",
		"Locations", "Absence Streaks", "Diagnostics",
	}, f.GetSheetList())
}
