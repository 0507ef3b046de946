package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Report domain errors
	case errors.Is(err, report.ErrInvalidWindow):
		BadRequest(w, "Reporting window start must not be after end", nil)
	case errors.Is(err, report.ErrNoPunchData):
		UnprocessableEntity(w, "No parseable punch data in the uploaded files", nil)

	// Ingest domain errors
	case errors.Is(err, ingest.ErrUnsupportedFileType):
		BadRequest(w, "Unsupported file type, expected .csv or .xlsx", nil)
	case errors.Is(err, ingest.ErrMissingColumn):
		UnprocessableEntity(w, err.Error(), nil)
	case errors.Is(err, ingest.ErrNoValidTimestamps):
		UnprocessableEntity(w, "No parseable date/time entries", nil)
	case errors.Is(err, ingest.ErrEmptyWorkbook):
		UnprocessableEntity(w, "Workbook contains no sheets", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
