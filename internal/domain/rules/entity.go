package rules

import "time"

type WeekendRuleType string

const (
	// WeekendRuleFixed rests on the same weekdays every week.
	WeekendRuleFixed WeekendRuleType = "fixed"
	// WeekendRuleAlternating follows a two-week cycle: odd ISO weeks rest
	// only on the first configured weekend day, even ISO weeks rest on all
	// configured weekend days.
	WeekendRuleAlternating WeekendRuleType = "alternating"
)

// RuleSet is the fully resolved policy for one employee at one location.
// Exactly one rest-day policy is active per resolved set: fixed weekdays,
// the alternating two-week cycle, or a rotational quota.
type RuleSet struct {
	StandardShiftHours         float64
	ShortThresholdHours        float64
	MoreTStartHours            float64
	MoreTEnabled               bool
	WeekendDays                []time.Weekday
	WeekendRuleType            WeekendRuleType
	IsRotationalOff            bool
	RotationalOffsPerWeek      int
	FixedBreakDeductionMinutes int
	FixedBreakThresholdHours   float64
	OpeningHoursCount          int
	Is24HourLocation           bool
}

// RuleOverride is a partial rule layer. Nil fields inherit from the layer
// below. WeekendDays distinguishes "unset" (nil pointer) from "explicitly
// cleared" (pointer to an empty slice), so a location can remove its
// company's fixed weekend and become rotational.
type RuleOverride struct {
	StandardShiftHours         *float64
	ShortThresholdHours        *float64
	MoreTStartHours            *float64
	MoreTEnabled               *bool
	WeekendDays                *[]time.Weekday
	WeekendRuleType            *WeekendRuleType
	IsRotationalOff            *bool
	RotationalOffsPerWeek      *int
	FixedBreakDeductionMinutes *int
	FixedBreakThresholdHours   *float64
	OpeningHoursCount          *int
	Is24HourLocation           *bool
}

// Merge returns base with every set field of the override applied. Neither
// input is mutated.
func Merge(base RuleSet, o RuleOverride) RuleSet {
	out := base
	if o.StandardShiftHours != nil {
		out.StandardShiftHours = *o.StandardShiftHours
	}
	if o.ShortThresholdHours != nil {
		out.ShortThresholdHours = *o.ShortThresholdHours
	}
	if o.MoreTStartHours != nil {
		out.MoreTStartHours = *o.MoreTStartHours
	}
	if o.MoreTEnabled != nil {
		out.MoreTEnabled = *o.MoreTEnabled
	}
	if o.WeekendDays != nil {
		out.WeekendDays = append([]time.Weekday(nil), (*o.WeekendDays)...)
	}
	if o.WeekendRuleType != nil {
		out.WeekendRuleType = *o.WeekendRuleType
	}
	if o.IsRotationalOff != nil {
		out.IsRotationalOff = *o.IsRotationalOff
	}
	if o.RotationalOffsPerWeek != nil {
		out.RotationalOffsPerWeek = *o.RotationalOffsPerWeek
	}
	if o.FixedBreakDeductionMinutes != nil {
		out.FixedBreakDeductionMinutes = *o.FixedBreakDeductionMinutes
	}
	if o.FixedBreakThresholdHours != nil {
		out.FixedBreakThresholdHours = *o.FixedBreakThresholdHours
	}
	if o.OpeningHoursCount != nil {
		out.OpeningHoursCount = *o.OpeningHoursCount
	}
	if o.Is24HourLocation != nil {
		out.Is24HourLocation = *o.Is24HourLocation
	}
	return out
}

// CompanyProfile is the configuration for one company: default rules plus
// per-location and per-employee partial overrides. Profiles are data, not
// code — new companies or overrides are added without touching resolution
// logic.
type CompanyProfile struct {
	Name              string
	Defaults          RuleSet
	LocationOverrides map[string]RuleOverride
	EmployeeOverrides map[string]RuleOverride
}
