package fixtures

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func boolPtr(b bool) *bool          { return &b }
func intPtr(i int) *int             { return &i }
func float64Ptr(f float64) *float64 { return &f }

func weekdaysPtr(days ...time.Weekday) *[]time.Weekday { return &days }

func ruleTypePtr(t rules.WeekendRuleType) *rules.WeekendRuleType { return &t }

// twelveHourStore is the override shared by the mall and campus stores that
// run a single 12-hour shift.
func twelveHourStore() rules.RuleOverride {
	return rules.RuleOverride{
		StandardShiftHours:  float64Ptr(12),
		ShortThresholdHours: float64Ptr(11),
		MoreTStartHours:     float64Ptr(13),
		WeekendDays:         weekdaysPtr(time.Friday, time.Saturday),
	}
}

// roundTheClockStore is the override for hospital and clinic kiosks that
// never close; their shifts are matched by entry/exit pairing instead of
// day grouping.
func roundTheClockStore() rules.RuleOverride {
	return rules.RuleOverride{
		WeekendDays:       weekdaysPtr(),
		IsRotationalOff:   boolPtr(true),
		OpeningHoursCount: intPtr(24),
		Is24HourLocation:  boolPtr(true),
	}
}

// workAllWeek marks retail branches without a fixed weekend; the resolver
// infers a rotational day off for them.
func workAllWeek() rules.RuleOverride {
	return rules.RuleOverride{
		WeekendDays:     weekdaysPtr(),
		MoreTStartHours: float64Ptr(8),
		MoreTEnabled:    boolPtr(true),
		IsRotationalOff: boolPtr(false),
	}
}

// brandManager is the employee override for brand managers: rotational off,
// no more-time accrual.
func brandManager() rules.RuleOverride {
	return rules.RuleOverride{
		MoreTEnabled:          boolPtr(false),
		IsRotationalOff:       boolPtr(true),
		WeekendDays:           weekdaysPtr(),
		RotationalOffsPerWeek: intPtr(1),
	}
}

// ==========================================
// COMPANY RULE PROFILES
// ==========================================

// CompanyProfiles returns the seeded rule profiles for every configured
// company. Profiles are plain data: onboarding a company or adjusting a
// branch rule is an edit here, never a code change in the engine.
func CompanyProfiles() []rules.CompanyProfile {
	return []rules.CompanyProfile{
		{
			Name: "Al-hadabah times",
			Defaults: rules.RuleSet{
				StandardShiftHours:  8,
				ShortThresholdHours: 7.5,
				MoreTStartHours:     9,
				MoreTEnabled:        true,
				WeekendDays:         []time.Weekday{time.Friday},
				WeekendRuleType:     rules.WeekendRuleFixed,
			},
			LocationOverrides: map[string]rules.RuleOverride{
				"Hadaba HO": {
					WeekendDays:     weekdaysPtr(time.Friday, time.Saturday),
					WeekendRuleType: ruleTypePtr(rules.WeekendRuleAlternating),
					MoreTEnabled:    boolPtr(false),
					IsRotationalOff: boolPtr(false),
				},
				"Hawally Warehouse ( Hadabah )": {
					WeekendDays:     weekdaysPtr(time.Friday),
					IsRotationalOff: boolPtr(false),
				},
				"Lighting Plus": {
					WeekendDays:     weekdaysPtr(time.Friday),
					MoreTEnabled:    boolPtr(false),
					IsRotationalOff: boolPtr(false),
				},
				"S16": {WeekendDays: weekdaysPtr(time.Friday), MoreTEnabled: boolPtr(false), IsRotationalOff: boolPtr(false)},
				"S17": {WeekendDays: weekdaysPtr(time.Friday), MoreTEnabled: boolPtr(false), IsRotationalOff: boolPtr(false)},
				"S20": {WeekendDays: weekdaysPtr(time.Friday), MoreTEnabled: boolPtr(false), IsRotationalOff: boolPtr(false)},
				"S21": {WeekendDays: weekdaysPtr(time.Friday), MoreTEnabled: boolPtr(false), IsRotationalOff: boolPtr(false)},
				"S33": {
					WeekendDays:     weekdaysPtr(time.Friday),
					MoreTStartHours: float64Ptr(8),
					MoreTEnabled:    boolPtr(true),
					IsRotationalOff: boolPtr(false),
				},
				"S14":                workAllWeek(),
				"S39":                workAllWeek(),
				"S40":                workAllWeek(),
				"S41":                workAllWeek(),
				"S42":                workAllWeek(),
				"Al hadabah Drivers": workAllWeek(),
			},
		},
		{
			Name: "D&H",
			Defaults: rules.RuleSet{
				StandardShiftHours:  8,
				ShortThresholdHours: 7.5,
				MoreTStartHours:     9,
				MoreTEnabled:        true,
				WeekendDays:         []time.Weekday{time.Friday},
				WeekendRuleType:     rules.WeekendRuleFixed,
			},
			LocationOverrides: map[string]rules.RuleOverride{
				"D&H HO":        {WeekendDays: weekdaysPtr(time.Friday), IsRotationalOff: boolPtr(false)},
				"D&H Warehouse": {WeekendDays: weekdaysPtr(time.Friday), IsRotationalOff: boolPtr(false)},
			},
			EmployeeOverrides: map[string]rules.RuleOverride{
				// Brand managers: rotational off, no more-time.
				"1031":  brandManager(),
				"12299": brandManager(),
				"2579":  brandManager(),
				"1494":  brandManager(),
				"1483":  brandManager(),
			},
		},
		{
			Name: "D&co",
			Defaults: rules.RuleSet{
				StandardShiftHours:  8,
				ShortThresholdHours: 7.5,
				MoreTStartHours:     9,
				MoreTEnabled:        true,
				WeekendDays:         []time.Weekday{time.Friday},
				WeekendRuleType:     rules.WeekendRuleFixed,
			},
			LocationOverrides: map[string]rules.RuleOverride{
				"DCO HO":    {WeekendDays: weekdaysPtr(time.Friday), IsRotationalOff: boolPtr(false)},
				"Warehouse": {WeekendDays: weekdaysPtr(time.Friday), IsRotationalOff: boolPtr(false)},
				"Fashion SHW": {
					WeekendDays:           weekdaysPtr(time.Friday),
					IsRotationalOff:       boolPtr(true),
					RotationalOffsPerWeek: intPtr(1),
				},
			},
		},
		{
			Name: "Second Cup",
			Defaults: rules.RuleSet{
				StandardShiftHours:  9,
				ShortThresholdHours: 8.5,
				MoreTStartHours:     10,
				MoreTEnabled:        true,
				WeekendRuleType:     rules.WeekendRuleFixed,
				OpeningHoursCount:   12,
			},
			LocationOverrides: map[string]rules.RuleOverride{
				"2nd cup Warehouse": {
					WeekendDays:     weekdaysPtr(time.Friday),
					IsRotationalOff: boolPtr(false),
				},

				// Hospital kiosks never close.
				"Dar al Shifa":        roundTheClockStore(),
				"Dar al Shifa Clinic": roundTheClockStore(),
				"Farwaniya Hospital":  roundTheClockStore(),
				"Bustan":              roundTheClockStore(),
				"Jahar Hospital":      roundTheClockStore(),
				"Khaitan":             roundTheClockStore(),
				"Capital Governorate": roundTheClockStore(),

				// Campus and mall stores run a single 12-hour shift.
				"Admin Science":      twelveHourStore(),
				"Life Science":       twelveHourStore(),
				"College of Science": twelveHourStore(),
				"Edu Boys":           twelveHourStore(),
				"Edu Girls":          twelveHourStore(),
				"Edu Girls 2":        twelveHourStore(),
				"Boys PAAET":         twelveHourStore(),
				"Nursing Girls":      twelveHourStore(),
				"Nursing Boys":       twelveHourStore(),
				"Makki Juma":         twelveHourStore(),
				"Marina Mall": {
					StandardShiftHours:  float64Ptr(12),
					ShortThresholdHours: float64Ptr(11),
					MoreTStartHours:     float64Ptr(13),
					WeekendDays:         weekdaysPtr(),
				},
				"International Hospital": {
					WeekendDays:         weekdaysPtr(),
					StandardShiftHours:  float64Ptr(8),
					ShortThresholdHours: float64Ptr(11),
					MoreTStartHours:     float64Ptr(13),
				},

				"BEAUTY AND TRAVEL": {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
				"PAAET Admin":       {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
				"CIT-SABA SALEM":    {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
				"Police Force":      {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
				"Edu Boys PAAET":    {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
				"Admin Tower PAAET": {WeekendDays: weekdaysPtr(time.Friday, time.Saturday)},
			},
		},
	}
}
