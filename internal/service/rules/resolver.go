package rules

import (
	"sort"

	domainRules "github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
)

type resolver struct {
	profiles map[string]domainRules.CompanyProfile
}

// NewResolver builds a resolver over an immutable snapshot of the given
// profiles. A running batch always sees one consistent rule table even if
// an operator swaps profiles between runs.
func NewResolver(profiles []domainRules.CompanyProfile) domainRules.Resolver {
	m := make(map[string]domainRules.CompanyProfile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return &resolver{profiles: m}
}

// Resolve layers company defaults, the location override, the
// implicit-rotational inference and finally the employee override. The
// inference runs before the employee layer, so an employee override can
// still force a non-rotational schedule.
func (r *resolver) Resolve(company, employeeID, sourceLocation string) domainRules.RuleSet {
	profile := r.profiles[company]
	eff := profile.Defaults

	if o, ok := profile.LocationOverrides[sourceLocation]; ok {
		eff = domainRules.Merge(eff, o)
	}

	// A location with no fixed weekend days and no explicit rotational
	// setting is implicitly rotational with one day off per week.
	if len(eff.WeekendDays) == 0 && !eff.IsRotationalOff {
		eff.IsRotationalOff = true
		if eff.RotationalOffsPerWeek == 0 {
			eff.RotationalOffsPerWeek = 1
		}
	}

	if o, ok := profile.EmployeeOverrides[employeeID]; ok {
		eff = domainRules.Merge(eff, o)
	}
	if eff.IsRotationalOff && eff.RotationalOffsPerWeek == 0 {
		eff.RotationalOffsPerWeek = 1
	}
	if eff.WeekendRuleType == "" {
		eff.WeekendRuleType = domainRules.WeekendRuleFixed
	}
	return eff
}

func (r *resolver) Profiles() []domainRules.CompanyProfile {
	out := make([]domainRules.CompanyProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
