package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSummary aggregates one employee's daily records over the reporting
// window and carries the absence ledger through both adjustment stages.
// The date lists are authoritative; every numeric count is derived from its
// paired list, never maintained independently.
type EmployeeSummary struct {
	EmployeeID      string
	Name            string
	SourceLocations []string
	PrimaryLocation string

	WindowStart time.Time
	WindowEnd   time.Time
	PunchStart  time.Time
	PunchEnd    time.Time

	TotalPresentDays    int
	SinglePunchDays     int
	OpenShiftDays       int
	ExpectedWorkingDays float64
	ExpectedWeekendDays float64
	PeriodOffDays       float64

	TotalShift           time.Duration
	TotalBreak           time.Duration
	TotalMoreT           time.Duration
	TotalShortT          time.Duration
	TotalPostMidnight    time.Duration
	AverageShiftDuration time.Duration
	MoreTDays            int
	ShortTDays           int

	AbsentDates []time.Time
	AbsentDays  int

	ExcusedDates     []time.Time
	ExcusedTotal     int
	FinalAbsentDates []time.Time
	FinalAbsentDays  int

	PendingOffCredit             decimal.Decimal
	PendingOffDates              []time.Time
	UnusedPendingOff             decimal.Decimal
	FinalAbsentDatesAfterPending []time.Time
	FinalAbsentDaysAfterPending  int
}

// PendingOffCredit is a manager-granted compensatory-off bank for one
// employee. Credit may be fractional (half-day credits are common), and the
// requested dates are optional.
type PendingOffCredit struct {
	EmployeeID     string
	Credit         decimal.Decimal
	RequestedDates []time.Time
}

// Adjustment stages, recorded on every AdjustmentDetail row.
const (
	StageLeave      = "leave"
	StagePendingOff = "pending_off"
)

// AdjustmentDetail is one audit row: which record excused or credited which
// dates for which employee.
type AdjustmentDetail struct {
	EmployeeID   string
	Stage        string
	Category     string
	WindowStart  time.Time
	WindowEnd    time.Time
	ExcusedDates []time.Time
	ExcusedDays  int
}

// LocationStats aggregates daily records per source location.
type LocationStats struct {
	Location        string
	Employees       int
	PunchDays       int
	TotalShift      time.Duration
	AverageShift    time.Duration
	SinglePunchRate float64
	MultiPunchRate  float64
	AbsenteeismRate float64
}

// AbsenceStreak is an employee's longest run of consecutive final absent
// dates inside the reporting window.
type AbsenceStreak struct {
	EmployeeID string
	Length     int
	Start      time.Time
	End        time.Time
}
