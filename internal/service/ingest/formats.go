package ingest

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/fixtures"
)

// generalLayouts are tried in order when a source has no dedicated layout,
// or when its dedicated layout fails on a row. Day-first layouts come
// first; the exports are predominantly day-first.
var generalLayouts = []string{
	"2/1/2006 3:04:05 PM",
	"2/1/2006 3:04 PM",
	"2-Jan-06 3:04:05 PM",
	"2-Jan-06 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"2/1/06 3:04:05 PM",
	"2/1/06 3:04 PM",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseTimestamp parses a punch timestamp, preferring the layout registered
// for the source device.
func parseTimestamp(source, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if layout, ok := fixtures.SourceDateFormats[source]; ok {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range generalLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// hrDateLayouts cover the date-only cells of the HR workbook.
var hrDateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"1/2/2006",
	"2/1/06",
	"2-Jan-06",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
}

func parseHRDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range hrDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
