package leave

import (
	"regexp"
	"strings"
	"time"
)

// Category is the canonical bucket a raw HR leave label maps into.
type Category string

const (
	CategoryVacation  Category = "vacation"
	CategorySick      Category = "sick"
	CategoryEmergency Category = "emergency"
	CategoryUnpaid    Category = "unpaid"

	// Employment-window markers. These never excuse dates directly; they
	// narrow the window inside which absences are evaluated.
	CategoryNewHire     Category = "new_hire"
	CategoryStopWorking Category = "stop_working"
	CategoryReturn      Category = "back_from_vacation"
)

// Excuses reports whether records of this category remove absent dates in
// the leave adjustment stage.
func (c Category) Excuses() bool {
	switch c {
	case CategoryVacation, CategorySick, CategoryEmergency, CategoryUnpaid:
		return true
	}
	return false
}

// Record is one HR-approved leave entry, read-only input from the HR
// workbook. Either a date range (HasDates) or a bare day count is present.
type Record struct {
	EmployeeID string
	Name       string
	Category   Category
	StartDate  time.Time
	EndDate    time.Time
	Days       float64
	HasDates   bool
}

var squeeze = regexp.MustCompile(`[\s_.&]+`)

func normalize(s string) string {
	return squeeze.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

var categorySynonyms = map[string]Category{
	"vac": CategoryVacation, "vacation": CategoryVacation,
	"annual": CategoryVacation, "annualleave": CategoryVacation,
	"leaveannual": CategoryVacation, "paidleave": CategoryVacation,

	"sick": CategorySick, "sickleave": CategorySick,
	"sickness": CategorySick, "sickleaves": CategorySick,

	"emergency": CategoryEmergency, "emergencyleave": CategoryEmergency,
	"emergencyleaveabsence": CategoryEmergency, "emergencyleaveabsent": CategoryEmergency,
	"emergencyleaveabsences": CategoryEmergency,

	"unpaid": CategoryUnpaid, "nopay": CategoryUnpaid,
	"leavewithoutpay": CategoryUnpaid, "lwp": CategoryUnpaid,
	"unpaidleave": CategoryUnpaid,

	"vacationreturn": CategoryReturn, "returnfromvacation": CategoryReturn,
	"backfromvacation": CategoryReturn,

	"stopworking": CategoryStopWorking,

	"newhire": CategoryNewHire, "newhiring": CategoryNewHire,
	"newhirring": CategoryNewHire,
}

// CanonicalCategory maps a raw sheet or column label onto its canonical
// bucket. The HR files are hand-maintained, so matching is tolerant of
// spacing, punctuation and spelling variants ("New Hirring", "Sick Leaves").
// The second return is false when the label matches no known bucket.
func CanonicalCategory(raw string) (Category, bool) {
	c, ok := categorySynonyms[normalize(raw)]
	return c, ok
}
