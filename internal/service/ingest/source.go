package ingest

import (
	"strings"

	"github.com/cmlabs-hris/attendance-recon-go/internal/fixtures"
)

// sourceName derives the source location from a punch file's name.
// Google-Drive style exports arrive as "<location>.xlsx - <sheet>.csv";
// some devices export under a numeric CLLL name (company digit plus
// location code) which resolves through the fixture tables.
func sourceName(filename string) string {
	name := filename
	if i := strings.Index(name, ".xlsx - "); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, ".csv")
	name = strings.TrimSuffix(name, ".xlsx")
	name = strings.TrimSpace(name)

	if resolved, ok := resolveNumericSource(name); ok {
		return resolved
	}
	return name
}

func resolveNumericSource(name string) (string, bool) {
	if len(name) < 2 || len(name) > 4 {
		return "", false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	company, ok := fixtures.CompanyCodes[name[:1]]
	if !ok {
		return "", false
	}
	code := name[1:]
	if len(code) == 1 {
		code = "0" + code
	}
	location, ok := fixtures.LocationCodes[company][code]
	return location, ok
}
