package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	domainReport "github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/adjust"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/recon"
)

type reportService struct {
	resolver rules.Resolver
	engine   *recon.Engine
	leave    adjust.LeaveStage
	pending  adjust.PendingStage
}

func NewReportService(resolver rules.Resolver, engine *recon.Engine, rounding adjust.CreditRounding) domainReport.ReportService {
	return &reportService{
		resolver: resolver,
		engine:   engine,
		pending:  adjust.PendingStage{Rounding: rounding},
	}
}

func (s *reportService) Run(ctx context.Context, req domainReport.RunRequest) (domainReport.RunResult, error) {
	if req.Start.After(req.End) {
		return domainReport.RunResult{}, fmt.Errorf("run %s: %w", req.Company, domainReport.ErrInvalidWindow)
	}
	if len(req.Punches) == 0 {
		return domainReport.RunResult{}, fmt.Errorf("run %s: %w", req.Company, domainReport.ErrNoPunchData)
	}

	records := s.engine.BuildDayRecords(req.Company, req.Punches, req.StatusPresent)

	leavesByEmployee := groupLeaves(req.Leaves)
	creditsByEmployee := groupCredits(req.Credits)

	result := domainReport.RunResult{
		RunID:       uuid.NewString(),
		Company:     req.Company,
		Start:       req.Start,
		End:         req.End,
		DayRecords:  records,
		Diagnostics: req.Diagnostics,
	}

	for _, emp := range groupByEmployee(records) {
		rs := s.resolver.Resolve(req.Company, emp.id, emp.primaryLocation)
		sum := buildSummary(req, emp, rs)

		lr := s.leave.Apply(emp.id, req.Start, req.End, sum.AbsentDates, leavesByEmployee[emp.id])
		sum.ExcusedDates = lr.ExcusedDates
		sum.ExcusedTotal = len(lr.ExcusedDates)
		sum.FinalAbsentDates = lr.FinalAbsentDates
		sum.FinalAbsentDays = len(lr.FinalAbsentDates)
		result.Adjustments = append(result.Adjustments, lr.Details...)

		if credit, ok := creditsByEmployee[emp.id]; ok {
			pr := s.pending.Apply(emp.id, lr.FinalAbsentDates, credit)
			sum.PendingOffCredit = credit.Credit
			sum.PendingOffDates = pr.PendingDates
			sum.UnusedPendingOff = pr.UnusedCredit
			sum.FinalAbsentDatesAfterPending = pr.FinalAbsentDates
			result.Adjustments = append(result.Adjustments, pr.Details...)
		} else {
			sum.FinalAbsentDatesAfterPending = lr.FinalAbsentDates
		}
		sum.FinalAbsentDaysAfterPending = len(sum.FinalAbsentDatesAfterPending)

		result.Summaries = append(result.Summaries, sum)
	}

	result.Locations = locationStats(records, result.Summaries)
	result.Streaks = absenceStreaks(result.Summaries)
	return result, nil
}

// employeeGroup is one employee's slice of the day records plus location
// facts derived from it.
type employeeGroup struct {
	id              string
	name            string
	records         []shift.DayRecord
	locations       []string
	primaryLocation string
}

func groupByEmployee(records []shift.DayRecord) []employeeGroup {
	byID := make(map[string]*employeeGroup)
	var order []string
	for _, rec := range records {
		g, ok := byID[rec.EmployeeID]
		if !ok {
			g = &employeeGroup{id: rec.EmployeeID, name: rec.Name}
			byID[rec.EmployeeID] = g
			order = append(order, rec.EmployeeID)
		}
		g.records = append(g.records, rec)
	}

	sort.Strings(order)
	out := make([]employeeGroup, 0, len(order))
	for _, id := range order {
		g := byID[id]
		g.locations, g.primaryLocation = locationFacts(g.records)
		out = append(out, *g)
	}
	return out
}

func locationFacts(records []shift.DayRecord) (unique []string, primary string) {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.SourceLocation == "" {
			continue
		}
		if counts[rec.SourceLocation] == 0 {
			unique = append(unique, rec.SourceLocation)
		}
		counts[rec.SourceLocation]++
	}
	sort.Strings(unique)

	best := 0
	for loc, n := range counts {
		if n > best || (n == best && loc < primary) {
			best, primary = n, loc
		}
	}
	return unique, primary
}

func groupLeaves(records []leave.Record) map[string][]leave.Record {
	out := make(map[string][]leave.Record)
	for _, r := range records {
		out[r.EmployeeID] = append(out[r.EmployeeID], r)
	}
	return out
}

func groupCredits(credits []summary.PendingOffCredit) map[string]summary.PendingOffCredit {
	out := make(map[string]summary.PendingOffCredit, len(credits))
	for _, c := range credits {
		out[c.EmployeeID] = c
	}
	return out
}
