package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

const pendingHeaderScanRows = 10

var pendingCreditAliases = []string{
	"pending_days", "pending off days", "pending off", "number of days",
	"off days", "days", "pending",
}

var requestedDatesAliases = []string{"requested dates", "requested", "dates"}

// isPendingSheet matches the compensatory-off sheet by name. The sheet is
// titled inconsistently across months ("Pending Off", "pending offs",
// "Pending_Off Days"), so both tokens are required but nothing else is.
func isPendingSheet(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "pending") && strings.Contains(n, "off")
}

func parsePendingSheet(sheet string, rows [][]string, log *diag.Log) []summary.PendingOffCredit {
	headerRow := findHeaderRow(rows, pendingHeaderScanRows, hrIDAliases)
	if headerRow < 0 {
		log.Addf(sheet, "no header row found, skipped")
		return nil
	}
	header := rows[headerRow]

	idCol, ok := findColumn(header, hrIDAliases)
	if !ok {
		log.Addf(sheet, "no employee id column, skipped")
		return nil
	}
	creditCol, ok := findColumn(header, pendingCreditAliases)
	if !ok {
		log.Addf(sheet, "no pending days column, skipped")
		return nil
	}
	datesCol, hasDates := findColumn(header, requestedDatesAliases)

	// Credits are aggregated per employee; the sheet sometimes lists the
	// same person twice when credit is granted in two batches.
	byID := make(map[string]*summary.PendingOffCredit)
	var order []string
	for _, row := range rows[headerRow+1:] {
		id := punch.NormalizeEmployeeID(cellAt(row, idCol))
		if id == "" {
			continue
		}

		raw := strings.TrimSpace(cellAt(row, creditCol))
		if raw == "" {
			continue
		}
		credit, err := decimal.NewFromString(raw)
		if err != nil {
			log.Addf(sheet, "employee %s: bad credit value %q", id, raw)
			continue
		}

		c, seen := byID[id]
		if !seen {
			c = &summary.PendingOffCredit{EmployeeID: id}
			byID[id] = c
			order = append(order, id)
		}
		c.Credit = c.Credit.Add(credit)

		if hasDates {
			c.RequestedDates = append(c.RequestedDates, parseRequestedDates(cellAt(row, datesCol))...)
		}
	}

	out := make([]summary.PendingOffCredit, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func parseRequestedDates(raw string) []time.Time {
	var dates []time.Time
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		if d, ok := parseHRDate(part); ok {
			dates = append(dates, d)
		}
	}
	return dates
}
