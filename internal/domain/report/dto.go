package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

// RunRequest is one reconciliation batch: a bounded punch set, a reporting
// window and the HR inputs. Everything the run needs travels in the request;
// no state is carried between runs.
type RunRequest struct {
	Company       string
	Start         time.Time
	End           time.Time
	Punches       []punch.Punch
	StatusPresent bool
	Leaves        []leave.Record
	Credits       []summary.PendingOffCredit
	Diagnostics   []diag.Entry
}

// RunResult is the full output of one reconciliation run.
type RunResult struct {
	RunID       string
	Company     string
	Start       time.Time
	End         time.Time
	DayRecords  []shift.DayRecord
	Summaries   []summary.EmployeeSummary
	Adjustments []summary.AdjustmentDetail
	Locations   []summary.LocationStats
	Streaks     []summary.AbsenceStreak
	Diagnostics []diag.Entry
}
