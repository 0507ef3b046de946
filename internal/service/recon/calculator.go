package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/shift"
)

// ShiftCalculator turns one employee's full sorted punch stream into daily
// shift records. The two implementations cover the two location families:
// day-grouped inference for standard locations, entry/exit pairing for
// round-the-clock ones. The calculator is chosen once per employee at rule
// resolution time.
type ShiftCalculator interface {
	DayRecords(punches []punch.Punch, rs rules.RuleSet, datasetMin time.Time) []shift.DayRecord
}

// RuleLookup resolves the effective rules for one employee at one source
// location.
type RuleLookup func(employeeID, source string) rules.RuleSet

// CalculatorFor selects the calculator matching the location policy resolved
// from the employee's first punch. The standard calculator re-resolves rules
// per day through lookup, so an employee who moves between locations gets
// each day's thresholds.
func CalculatorFor(rs rules.RuleSet, statusPresent bool, lookup RuleLookup) ShiftCalculator {
	if rs.Is24HourLocation {
		return &OvernightCalculator{}
	}
	return &StandardCalculator{StatusPresent: statusPresent, Rules: lookup}
}
