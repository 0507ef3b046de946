package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-recon-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/dateutil"
)

type ReportHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type reportHandler struct {
	reports        report.ReportService
	ingest         ingest.Service
	defaultCompany string
	maxUploadSize  int64
}

func NewReportHandler(reports report.ReportService, ingestSvc ingest.Service, defaultCompany string, maxUploadSizeMB int) ReportHandler {
	return &reportHandler{
		reports:        reports,
		ingest:         ingestSvc,
		defaultCompany: defaultCompany,
		maxUploadSize:  int64(maxUploadSizeMB) << 20,
	}
}

// Run handles POST /api/v1/reports/run. The request is a multipart form:
// company, start and end fields, one or more punch_files, an optional
// hr_workbook, and an optional format field (json, the default, or xlsx).
func (h *reportHandler) Run(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", map[string]string{"body": err.Error()})
		return
	}

	company := r.FormValue("company")
	if company == "" {
		company = h.defaultCompany
	}
	if company == "" {
		response.BadRequest(w, "Missing company field", nil)
		return
	}

	start, end, details := parseWindow(r.FormValue("start"), r.FormValue("end"))
	if details != nil {
		response.BadRequest(w, "Invalid reporting window", details)
		return
	}

	format := r.FormValue("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "xlsx" {
		response.BadRequest(w, "Unsupported format, expected json or xlsx", nil)
		return
	}

	punchFiles, err := formFiles(r, "punch_files")
	if err != nil {
		response.BadRequest(w, "Unreadable punch files", map[string]string{"punch_files": err.Error()})
		return
	}
	if len(punchFiles) == 0 {
		response.BadRequest(w, "At least one punch file is required", nil)
		return
	}

	var log diag.Log
	batch := h.ingest.ParsePunchFiles(punchFiles, &log)

	req := report.RunRequest{
		Company:       company,
		Start:         start,
		End:           end,
		Punches:       batch.Punches,
		StatusPresent: batch.StatusPresent,
	}

	hrFiles, err := formFiles(r, "hr_workbook")
	if err != nil {
		response.BadRequest(w, "Unreadable HR workbook", map[string]string{"hr_workbook": err.Error()})
		return
	}
	if len(hrFiles) > 0 {
		hr, err := h.ingest.ParseHRWorkbook(hrFiles[0], &log)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		req.Leaves = hr.Leaves
		req.Credits = hr.Credits
	}
	req.Diagnostics = log.Entries()

	result, err := h.reports.Run(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if format == "xlsx" {
		data, err := h.reports.Workbook(r.Context(), result)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		filename := fmt.Sprintf("attendance-%s-%s.xlsx", result.Company, dateutil.ISO(result.Start))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(data)
		return
	}

	response.Success(w, toRunResponse(result))
}

func parseWindow(rawStart, rawEnd string) (start, end time.Time, details map[string]string) {
	var err error
	if start, err = dateutil.ParseISO(rawStart); err != nil {
		return start, end, map[string]string{"start": "expected YYYY-MM-DD"}
	}
	if end, err = dateutil.ParseISO(rawEnd); err != nil {
		return start, end, map[string]string{"end": "expected YYYY-MM-DD"}
	}
	return start, end, nil
}

func formFiles(r *http.Request, field string) ([]ingest.File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []ingest.File
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", header.Filename, err)
		}
		files = append(files, ingest.File{Name: header.Filename, Data: data})
	}
	return files, nil
}
