package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// AbsentDates enumerates, in order, every date in [start, end] that is not
// a rest day under the given rules, not a vacation day, and not a day with
// qualifying presence. The returned list is the unit the adjustment stages
// operate on; counts are always derived from it, never the other way
// around.
func AbsentDates(start, end time.Time, present, vacation map[time.Time]bool, rs rules.RuleSet) []time.Time {
	var absent []time.Time
	for d := dateutil.Day(start); !d.After(dateutil.Day(end)); d = d.AddDate(0, 0, 1) {
		if IsRestDay(d, rs) {
			continue
		}
		if vacation[d] {
			continue
		}
		if present[d] {
			continue
		}
		absent = append(absent, d)
	}
	return absent
}
