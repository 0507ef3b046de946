package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

func TestAbsentDatesSkipsRestVacationAndPresence(t *testing.T) {
	rs := rules.RuleSet{
		WeekendDays:     []time.Weekday{time.Friday},
		WeekendRuleType: rules.WeekendRuleFixed,
	}

	present := map[time.Time]bool{
		mustISO(t, "2025-01-06"): true,
		mustISO(t, "2025-01-07"): true,
	}
	vacation := map[time.Time]bool{
		mustISO(t, "2025-01-08"): true,
	}

	got := AbsentDates(mustISO(t, "2025-01-06"), mustISO(t, "2025-01-12"), present, vacation, rs)

	// 09 and 11, 12 remain; 10 is a Friday.
	assert.Equal(t, []string{"2025-01-09", "2025-01-11", "2025-01-12"}, dateutil.ISOList(got))
}

func TestAbsentDatesRotationalCountsEveryDay(t *testing.T) {
	rs := rules.RuleSet{IsRotationalOff: true, RotationalOffsPerWeek: 1}

	got := AbsentDates(mustISO(t, "2025-01-06"), mustISO(t, "2025-01-12"), nil, nil, rs)

	assert.Len(t, got, 7)
}

func TestAbsentDatesOrdered(t *testing.T) {
	rs := rules.RuleSet{}

	got := AbsentDates(mustISO(t, "2025-01-06"), mustISO(t, "2025-01-09"), nil, nil, rs)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Before(got[i]))
	}
}
