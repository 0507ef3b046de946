package report

import "context"

// ReportService runs reconciliation batches and serializes their results.
type ReportService interface {
	// Run executes the full pipeline over one batch: day-record
	// construction, window aggregation, the two adjustment stages and the
	// location analytics.
	Run(ctx context.Context, req RunRequest) (RunResult, error)

	// Workbook renders a run result as an xlsx workbook.
	Workbook(ctx context.Context, result RunResult) ([]byte, error)
}
