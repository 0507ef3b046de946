package ingest

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/summary"
)

// File is one uploaded input, held in memory for the duration of a run.
type File struct {
	Name string
	Data []byte
}

// PunchBatch is the combined result of parsing the punch files of one run.
// StatusPresent is true when at least one file carried a status column;
// without it, shift inference degrades to presence-only mode.
type PunchBatch struct {
	Punches       []punch.Punch
	StatusPresent bool
}

// HRBatch is the parsed content of an HR overrides workbook: leave records
// from the category sheets plus pending-off credits from the pending sheet.
type HRBatch struct {
	Leaves  []leave.Record
	Credits []summary.PendingOffCredit
}
