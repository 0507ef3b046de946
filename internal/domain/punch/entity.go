package punch

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Status labels as emitted by the fingerprint devices. Some devices omit the
// status column entirely; shift inference then degrades to presence-only mode.
const (
	StatusEntry = "C/In"
	StatusExit  = "C/Out"
)

// Punch is a single biometric clock event. It is produced once by the file
// adapter and only ever filtered or grouped afterwards, never mutated.
type Punch struct {
	EmployeeID string
	Name       string
	Time       time.Time
	Status     string
	Source     string
}

// IsEntry reports whether the status label marks a clock-in. Device exports
// sometimes decorate the label (e.g. "OverTime C/In"), so this matches by
// substring.
func (p Punch) IsEntry() bool {
	return strings.Contains(p.Status, StatusEntry)
}

// IsExit reports whether the status label marks a clock-out.
func (p Punch) IsExit() bool {
	return strings.Contains(p.Status, StatusExit)
}

// NormalizeEmployeeID brings device employee IDs to a canonical string form.
// Spreadsheet exports frequently deliver numeric IDs as floats ("1084.0");
// those are collapsed to their integer form.
func NormalizeEmployeeID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}
