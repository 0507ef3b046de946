package adjust

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

// CreditRounding controls how a fractional compensatory-off credit is
// converted into whole consumable days. Fractions never consume a date; the
// remainder is reported back as unused credit.
type CreditRounding string

const (
	RoundFloor CreditRounding = "floor"
	RoundCeil  CreditRounding = "ceil"
)

// PendingResult is the outcome of the pending-off stage for one employee.
type PendingResult struct {
	PendingDates     []time.Time
	FinalAbsentDates []time.Time
	UnusedCredit     decimal.Decimal
	Details          []summary.AdjustmentDetail
}

// PendingStage consumes manager-granted compensatory-off credit against the
// dates the leave stage left absent. Requested dates that are actually
// absent go first; any credit left after that covers the most recent
// remaining absences. Overdrawn credit is not an error, it is simply
// reported as unused.
type PendingStage struct {
	Rounding CreditRounding
}

func (s PendingStage) Apply(employeeID string, finalAbsent []time.Time, credit summary.PendingOffCredit) PendingResult {
	whole := credit.Credit.Floor()
	if s.Rounding == RoundCeil {
		whole = credit.Credit.Ceil()
	}
	budget := int(whole.IntPart())
	if budget < 0 {
		budget = 0
	}

	remaining := append([]time.Time(nil), finalAbsent...)
	var consumed []time.Time

	for _, want := range credit.RequestedDates {
		if budget == 0 {
			break
		}
		if i := indexOfDate(remaining, want); i >= 0 {
			consumed = append(consumed, remaining[i])
			remaining = append(remaining[:i], remaining[i+1:]...)
			budget--
		}
	}

	// Most recent absences first for whatever credit is left.
	for budget > 0 && len(remaining) > 0 {
		last := len(remaining) - 1
		consumed = append(consumed, remaining[last])
		remaining = remaining[:last]
		budget--
	}

	sort.Slice(consumed, func(i, j int) bool { return consumed[i].Before(consumed[j]) })

	// Ceil rounding can consume more whole days than the fractional credit
	// covers; unused credit never reports that as a negative balance.
	unused := credit.Credit.Sub(decimal.NewFromInt(int64(len(consumed))))
	if unused.IsNegative() {
		unused = decimal.Zero
	}

	res := PendingResult{
		PendingDates:     consumed,
		FinalAbsentDates: remaining,
		UnusedCredit:     unused,
	}
	if len(consumed) > 0 {
		res.Details = append(res.Details, summary.AdjustmentDetail{
			EmployeeID:   employeeID,
			Stage:        summary.StagePendingOff,
			Category:     summary.StagePendingOff,
			ExcusedDates: consumed,
			ExcusedDays:  len(consumed),
		})
	}
	return res
}

func indexOfDate(dates []time.Time, want time.Time) int {
	for i, d := range dates {
		if d.Equal(want) {
			return i
		}
	}
	return -1
}
