package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-recon-go/internal/config"
	"github.com/cmlabs-hris/attendance-recon-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-recon-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/adjust"
	ingestService "github.com/cmlabs-hris/attendance-recon-go/internal/service/ingest"
	"github.com/cmlabs-hris/attendance-recon-go/internal/service/recon"
	reportService "github.com/cmlabs-hris/attendance-recon-go/internal/service/report"
	rulesService "github.com/cmlabs-hris/attendance-recon-go/internal/service/rules"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	resolver := rulesService.NewResolver(fixtures.CompanyProfiles())
	engine := recon.NewEngine(resolver)

	rounding := adjust.RoundFloor
	if cfg.Report.CreditRounding == "ceil" {
		rounding = adjust.RoundCeil
	}

	reports := reportService.NewReportService(resolver, engine, rounding)
	ingest := ingestService.NewIngestService()

	reportHandler := appHTTP.NewReportHandler(reports, ingest, cfg.Report.DefaultCompany, cfg.Report.MaxUploadSizeMB)
	companyHandler := appHTTP.NewCompanyHandler(resolver)

	router := appHTTP.NewRouter(cfg.App.Env, reportHandler, companyHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
