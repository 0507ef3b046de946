package ingest

import "github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"

// Service adapts uploaded spreadsheets into engine inputs.
type Service interface {
	// ParsePunchFiles reads every punch file, accumulating per-file
	// failures on the diagnostic log instead of aborting the batch.
	ParsePunchFiles(files []File, log *diag.Log) PunchBatch

	// ParseHRWorkbook reads the HR overrides workbook: one sheet per leave
	// category plus an optional pending-off sheet.
	ParseHRWorkbook(file File, log *diag.Log) (HRBatch, error)
}
