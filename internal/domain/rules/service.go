package rules

// Resolver merges the configuration layers for one employee-day into an
// effective RuleSet.
type Resolver interface {
	// Resolve layers company defaults, the location override and the
	// employee override, applying the implicit-rotational inference in
	// between. Unknown company, location or employee identifiers silently
	// fall back to the next broader layer; there is no error path.
	Resolve(company, employeeID, sourceLocation string) RuleSet

	// Profiles returns the configured company profiles, ordered by name.
	Profiles() []CompanyProfile
}
