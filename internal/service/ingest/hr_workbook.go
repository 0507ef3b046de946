package ingest

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
)

// The HR workbook is hand-maintained: header rows float a few rows down,
// column titles vary per sheet, and extra commentary rows appear anywhere.
// Parsing therefore scans for a header row and matches columns against
// per-category candidate lists instead of assuming fixed positions.

const headerScanRows = 15

var headerKeywords = []string{"no.", "employee", "id", "name", "doc", "document"}

var hrIDAliases = []string{
	"no.", "no", "id", "employee", "employee id", "employee no", "emp id",
	"staff", "staff id", "code",
}

var hrNameAliases = []string{"name", "employee name", "staff name"}

var daysAliases = []string{"days", "number of days", "count", "duration", "total days"}

// dateColumns lists, per category, the header candidates for the start and
// end date columns, most specific first. singleIsEnd marks categories whose
// lone date column means an end-of-employment date rather than a start.
type dateColumns struct {
	start       []string
	end         []string
	singleIsEnd bool
}

var categoryColumns = map[leave.Category]dateColumns{
	leave.CategorySick: {
		start: []string{"absence from date", "from date", "start date", "from"},
		end:   []string{"absence to date", "to date", "end date", "to"},
	},
	leave.CategoryEmergency: {
		start: []string{"from date", "from"},
		end:   []string{"till", "to date", "to"},
	},
	leave.CategoryVacation: {
		start: []string{"from date", "from"},
		end:   []string{"to date", "to"},
	},
	leave.CategoryReturn: {
		start: []string{"return date", "date"},
	},
	leave.CategoryNewHire: {
		start: []string{"date of hire", "hire date", "date"},
	},
	leave.CategoryStopWorking: {
		end:         []string{"last day", "leaving date", "date"},
		singleIsEnd: true,
	},
}

var defaultColumns = dateColumns{
	start: []string{"start date", "date from", "start", "from"},
	end:   []string{"end date", "date to", "end", "to"},
}

func (s *ingestService) ParseHRWorkbook(file ingest.File, log *diag.Log) (ingest.HRBatch, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		return ingest.HRBatch{}, fmt.Errorf("open hr workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return ingest.HRBatch{}, ingest.ErrEmptyWorkbook
	}

	var batch ingest.HRBatch
	for _, sheet := range sheets {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			log.Addf(sheet, "unreadable sheet: %v", err)
			continue
		}

		if isPendingSheet(sheet) {
			batch.Credits = append(batch.Credits, parsePendingSheet(sheet, rows, log)...)
			continue
		}

		category, ok := leave.CanonicalCategory(sheet)
		if !ok {
			log.Addf(sheet, "unrecognized sheet name, skipped")
			continue
		}
		batch.Leaves = append(batch.Leaves, parseCategorySheet(sheet, category, rows, log)...)
	}
	return batch, nil
}

func parseCategorySheet(sheet string, category leave.Category, rows [][]string, log *diag.Log) []leave.Record {
	headerRow := findHeaderRow(rows, headerScanRows, headerKeywords)
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
	nameCol, _ := findColumn(header, hrNameAliases)

	cols, ok := categoryColumns[category]
	if !ok {
		cols = defaultColumns
	}
	startCol, hasStart := findColumn(header, cols.start)
	endCol, hasEnd := findColumn(header, cols.end)
	daysCol, hasDays := findColumn(header, daysAliases)

	var records []leave.Record
	for _, row := range rows[headerRow+1:] {
		id := punch.NormalizeEmployeeID(cellAt(row, idCol))
		if id == "" {
			continue
		}

		rec := leave.Record{
			EmployeeID: id,
			Name:       strings.TrimSpace(cellAt(row, nameCol)),
			Category:   category,
		}

		if hasStart {
			if d, ok := parseHRDate(cellAt(row, startCol)); ok {
				rec.StartDate = d
				rec.HasDates = true
			}
		}
		if hasEnd {
			if d, ok := parseHRDate(cellAt(row, endCol)); ok {
				rec.EndDate = d
				rec.HasDates = true
			}
		}
		if rec.HasDates {
			if rec.EndDate.IsZero() && !cols.singleIsEnd {
				rec.EndDate = rec.StartDate
			}
			if rec.StartDate.IsZero() && !cols.singleIsEnd {
				rec.StartDate = rec.EndDate
			}
		}

		if hasDays {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cellAt(row, daysCol)), 64); err == nil {
				rec.Days = v
			}
		}

		if !rec.HasDates && rec.Days == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// findHeaderRow scans the first maxRows rows for one containing any of the
// given keywords.
func findHeaderRow(rows [][]string, maxRows int, keywords []string) int {
	limit := len(rows)
	if limit > maxRows {
		limit = maxRows
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			n := normalizeHeader(cell)
			for _, kw := range keywords {
				if n == kw || (kw != "id" && strings.Contains(n, kw)) {
					return i
				}
			}
		}
	}
	return -1
}
