package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

func mustISO(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseISO(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestIsRestDayFixedWeekend(t *testing.T) {
	rs := rules.RuleSet{
		WeekendDays:     []time.Weekday{time.Friday, time.Saturday},
		WeekendRuleType: rules.WeekendRuleFixed,
	}

	assert.True(t, IsRestDay(mustISO(t, "2025-01-10"), rs))  // Friday
	assert.True(t, IsRestDay(mustISO(t, "2025-01-11"), rs))  // Saturday
	assert.False(t, IsRestDay(mustISO(t, "2025-01-12"), rs)) // Sunday
}

func TestIsRestDayAlternatingWeeks(t *testing.T) {
	rs := rules.RuleSet{
		WeekendDays:     []time.Weekday{time.Friday, time.Saturday},
		WeekendRuleType: rules.WeekendRuleAlternating,
	}

	// 2025-01-10 falls in ISO week 2 (even): both days rest.
	assert.True(t, IsRestDay(mustISO(t, "2025-01-10"), rs))
	assert.True(t, IsRestDay(mustISO(t, "2025-01-11"), rs))

	// 2025-01-17 falls in ISO week 3 (odd): only Friday rests.
	assert.True(t, IsRestDay(mustISO(t, "2025-01-17"), rs))
	assert.False(t, IsRestDay(mustISO(t, "2025-01-18"), rs))
}

func TestIsRestDayRotationalAlwaysFalse(t *testing.T) {
	rs := rules.RuleSet{IsRotationalOff: true, RotationalOffsPerWeek: 1}

	for d := mustISO(t, "2025-01-06"); !d.After(mustISO(t, "2025-01-12")); d = d.AddDate(0, 0, 1) {
		assert.False(t, IsRestDay(d, rs))
	}
}

func TestExpectedWorkingDaysRotational(t *testing.T) {
	rs := rules.RuleSet{IsRotationalOff: true, RotationalOffsPerWeek: 1}

	got := ExpectedWorkingDays(mustISO(t, "2025-01-01"), mustISO(t, "2025-01-28"), rs)

	assert.InDelta(t, 24.0, got, 0.0001)
}

func TestExpectedWorkingDaysFixed(t *testing.T) {
	rs := rules.RuleSet{
		WeekendDays:     []time.Weekday{time.Friday},
		WeekendRuleType: rules.WeekendRuleFixed,
	}

	// Two full weeks, one Friday off each.
	got := ExpectedWorkingDays(mustISO(t, "2025-01-06"), mustISO(t, "2025-01-19"), rs)

	assert.Equal(t, 12.0, got)
}
