package recon

import (
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

// LogicalDate maps a punch to the calendar date it is attributed to for
// grouping. An exit punch between 00:00 and 01:00 belongs to the previous
// day's shift and is rolled back, except at round-the-clock locations
// (their pairing logic spans days on its own) and on the dataset's first
// day, where there is no prior day to roll into.
func LogicalDate(p punch.Punch, is24Hour bool, datasetMin time.Time) time.Time {
	day := dateutil.Day(p.Time)
	if is24Hour {
		return day
	}
	if p.Time.Hour() == 0 && p.IsExit() && !day.Equal(dateutil.Day(datasetMin)) {
		return day.AddDate(0, 0, -1)
	}
	return day
}
