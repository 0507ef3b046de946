package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-recon-go/internal/fixtures"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/adjust"
	ingestService "github.com/cmlabs-hris/attendance-recon-go/internal/service/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/recon"
	reportService "github.com/cmlabs-hris/attendance-recon-go/internal/service/report"
	rulesService "github.com/cmlabs-hris/attendance-recon-go/internal/service/rules"
)

func testRouter() http.Handler {
	resolver := rulesService.NewResolver(fixtures.CompanyProfiles())
	engine := recon.NewEngine(resolver)
	reports := reportService.NewReportService(resolver, engine, adjust.RoundFloor)
	ingest := ingestService.NewIngestService()

	return NewRouter("test",
		NewReportHandler(reports, ingest, "", 16),
		NewCompanyHandler(resolver))
}

const homzMallCSV = `No.,Name,Date/Time,Status
100,Omar,1/6/2025 8:00:00 AM,C/In
100,Omar,1/6/2025 5:00:00 PM,C/Out
`

func runRequestBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		part, err := mw.CreateFormFile("punch_files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestRunEndpointJSON(t *testing.T) {
	router := testRouter()

	body, contentType := runRequestBody(t,
		map[string]string{
			"company": "Second Cup",
			"start":   "2025-01-06",
			"end":     "2025-01-12",
		},
		map[string]string{"Homz Mall.csv": homzMallCSV})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/run", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool        `json:"success"`
		Data    runResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.RunID)
	require.Len(t, envelope.Data.Summaries, 1)
	assert.Equal(t, "100", envelope.Data.Summaries[0].EmployeeID)
	assert.Equal(t, "Homz Mall", envelope.Data.Summaries[0].PrimaryLocation)
}

func TestRunEndpointXLSX(t *testing.T) {
	router := testRouter()

	body, contentType := runRequestBody(t,
		map[string]string{
			"company": "Second Cup",
			"start":   "2025-01-06",
			"end":     "2025-01-12",
			"format":  "xlsx",
		},
		map[string]string{"Homz Mall.csv": homzMallCSV})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/run", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, rec.Body.Len())
}

func TestRunEndpointRejectsBadWindow(t *testing.T) {
	router := testRouter()

	body, contentType := runRequestBody(t,
		map[string]string{
			"company": "Second Cup",
			"start":   "not-a-date",
			"end":     "2025-01-12",
		},
		map[string]string{"Homz Mall.csv": homzMallCSV})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/run", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunEndpointRequiresPunchFiles(t *testing.T) {
	router := testRouter()

	body, contentType := runRequestBody(t,
		map[string]string{
			"company": "Second Cup",
			"start":   "2025-01-06",
			"end":     "2025-01-12",
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/run", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormFilesSurfacesUnreadableHeader(t *testing.T) {
	// A file header with no buffered content and no temp file behind it
	// fails on open; Run reports that as a 400 instead of silently
	// proceeding without the workbook.
	r := &http.Request{MultipartForm: &multipart.Form{
		File: map[string][]*multipart.FileHeader{
			"hr_workbook": {{Filename: "leave.xlsx", Size: 4}},
		},
	}}

	_, err := formFiles(r, "hr_workbook")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leave.xlsx")
}

func TestCompanyEndpoints(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []companyDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 4)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/companies/Second%20Cup/rules?location=Dar%20al%20Shifa", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var rulesEnvelope struct {
		Data ruleSetDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rulesEnvelope))
	assert.True(t, rulesEnvelope.Data.Is24HourLocation)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies/Nowhere/rules", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
