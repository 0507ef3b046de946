package ingest

import "errors"

// Ingest domain errors. These are the only hard failures in the system;
// each aborts a single input file while the rest of the batch continues.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type, expected .csv or .xlsx")
	ErrMissingColumn       = errors.New("missing critical column")
	ErrNoValidTimestamps   = errors.New("no parseable date/time entries")
	ErrEmptyWorkbook       = errors.New("workbook contains no sheets")
)
