package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
)

// Column aliases seen across the device exports. Matching is on the
// normalized header text.
var (
	idAliases       = []string{"no.", "ac-no.", "no", "ac no.", "acno"}
	nameAliases     = []string{"name"}
	dateTimeAliases = []string{"date/time", "datetime", "date time", "time"}
	statusAliases   = []string{"status", "state"}
)

func parsePunchFile(f ingest.File, log *diag.Log) ([]punch.Punch, bool, error) {
	rows, err := fileRows(f)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, ingest.ErrNoValidTimestamps
	}

	header := rows[0]
	idCol, ok := findColumn(header, idAliases)
	if !ok {
		return nil, false, fmt.Errorf("%w: employee id", ingest.ErrMissingColumn)
	}
	nameCol, ok := findColumn(header, nameAliases)
	if !ok {
		return nil, false, fmt.Errorf("%w: name", ingest.ErrMissingColumn)
	}
	timeCol, ok := findColumn(header, dateTimeAliases)
	if !ok {
		return nil, false, fmt.Errorf("%w: date/time", ingest.ErrMissingColumn)
	}
	statusCol, statusPresent := findColumn(header, statusAliases)

	source := sourceName(f.Name)

	var punches []punch.Punch
	skipped := 0
	for _, row := range rows[1:] {
		id := punch.NormalizeEmployeeID(cellAt(row, idCol))
		raw := cellAt(row, timeCol)
		if id == "" && strings.TrimSpace(raw) == "" {
			continue
		}

		ts, ok := parseTimestamp(source, raw)
		if !ok {
			skipped++
			continue
		}

		p := punch.Punch{
			EmployeeID: id,
			Name:       strings.TrimSpace(cellAt(row, nameCol)),
			Time:       ts,
			Source:     source,
		}
		if statusPresent {
			p.Status = strings.TrimSpace(cellAt(row, statusCol))
		}
		punches = append(punches, p)
	}

	if len(punches) == 0 {
		return nil, false, ingest.ErrNoValidTimestamps
	}
	if skipped > 0 {
		log.Addf(f.Name, "%d rows had unparseable timestamps", skipped)
	}

	sort.SliceStable(punches, func(i, j int) bool { return punches[i].Time.Before(punches[j].Time) })
	return punches, statusPresent, nil
}

func fileRows(f ingest.File) ([][]string, error) {
	lower := strings.ToLower(f.Name)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		r := csv.NewReader(bytes.NewReader(f.Data))
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return rows, nil

	case strings.HasSuffix(lower, ".xlsx"):
		wb, err := excelize.OpenReader(bytes.NewReader(f.Data))
		if err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
		defer wb.Close()

		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, ingest.ErrEmptyWorkbook
		}
		rows, err := wb.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
		}
		return rows, nil
	}
	return nil, ingest.ErrUnsupportedFileType
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func findColumn(header []string, aliases []string) (int, bool) {
	for i, h := range header {
		n := normalizeHeader(h)
		for _, a := range aliases {
			if n == a {
				return i, true
			}
		}
	}
	return 0, false
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
