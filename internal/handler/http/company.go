package http

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/rules"
	"github.com/cmlabs-hris/attendance-recon-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Rules(w http.ResponseWriter, r *http.Request)
}

type companyHandler struct {
	resolver rules.Resolver
}

func NewCompanyHandler(resolver rules.Resolver) CompanyHandler {
	return &companyHandler{resolver: resolver}
}

type companyDTO struct {
	Name              string     `json:"name"`
	Locations         []string   `json:"locations"`
	EmployeeOverrides int        `json:"employee_overrides"`
	Defaults          ruleSetDTO `json:"defaults"`
}

type ruleSetDTO struct {
	StandardShiftHours         float64  `json:"standard_shift_hours"`
	ShortThresholdHours        float64  `json:"short_threshold_hours"`
	MoreTEnabled               bool     `json:"more_t_enabled"`
	MoreTStartHours            float64  `json:"more_t_start_hours"`
	WeekendDays                []string `json:"weekend_days"`
	WeekendRuleType            string   `json:"weekend_rule_type"`
	IsRotationalOff            bool     `json:"is_rotational_off"`
	RotationalOffsPerWeek      int      `json:"rotational_offs_per_week"`
	FixedBreakDeductionMinutes int      `json:"fixed_break_deduction_minutes"`
	FixedBreakThresholdHours   float64  `json:"fixed_break_threshold_hours"`
	Is24HourLocation           bool     `json:"is_24_hour_location"`
}

// List handles GET /api/v1/companies.
func (h *companyHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles := h.resolver.Profiles()

	out := make([]companyDTO, 0, len(profiles))
	for _, p := range profiles {
		locations := make([]string, 0, len(p.LocationOverrides))
		for name := range p.LocationOverrides {
			locations = append(locations, name)
		}
		sort.Strings(locations)

		out = append(out, companyDTO{
			Name:              p.Name,
			Locations:         locations,
			EmployeeOverrides: len(p.EmployeeOverrides),
			Defaults:          toRuleSetDTO(p.Defaults),
		})
	}
	response.Success(w, out)
}

// Rules handles GET /api/v1/companies/{company}/rules. The optional
// employee_id and location query parameters resolve the full override
// chain; without them the company defaults come back.
func (h *companyHandler) Rules(w http.ResponseWriter, r *http.Request) {
	company, err := url.PathUnescape(chi.URLParam(r, "company"))
	if err != nil || !h.knownCompany(company) {
		response.NotFound(w, "Company not found")
		return
	}

	rs := h.resolver.Resolve(company,
		r.URL.Query().Get("employee_id"),
		r.URL.Query().Get("location"))
	response.Success(w, toRuleSetDTO(rs))
}

func (h *companyHandler) knownCompany(name string) bool {
	for _, p := range h.resolver.Profiles() {
		if p.Name == name {
			return true
		}
	}
	return false
}

func toRuleSetDTO(rs rules.RuleSet) ruleSetDTO {
	weekendDays := make([]string, 0, len(rs.WeekendDays))
	for _, d := range rs.WeekendDays {
		weekendDays = append(weekendDays, d.String())
	}

	return ruleSetDTO{
		StandardShiftHours:         rs.StandardShiftHours,
		ShortThresholdHours:        rs.ShortThresholdHours,
		MoreTEnabled:               rs.MoreTEnabled,
		MoreTStartHours:            rs.MoreTStartHours,
		WeekendDays:                weekendDays,
		WeekendRuleType:            string(rs.WeekendRuleType),
		IsRotationalOff:            rs.IsRotationalOff,
		RotationalOffsPerWeek:      rs.RotationalOffsPerWeek,
		FixedBreakDeductionMinutes: rs.FixedBreakDeductionMinutes,
		FixedBreakThresholdHours:   rs.FixedBreakThresholdHours,
		Is24HourLocation:           rs.Is24HourLocation,
	}
}
