package ingest

import (
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/diag"
	"github.com/cmlabs-hris/attendance-recon-go/internal/domain/ingest"
)

type ingestService struct{}

func NewIngestService() ingest.Service {
	return &ingestService{}
}

func (s *ingestService) ParsePunchFiles(files []ingest.File, log *diag.Log) ingest.PunchBatch {
	var batch ingest.PunchBatch
	for _, f := range files {
		punches, statusPresent, err := parsePunchFile(f, log)
		if err != nil {
			log.Addf(f.Name, "skipped: %v", err)
			continue
		}
		batch.Punches = append(batch.Punches, punches...)
		batch.StatusPresent = batch.StatusPresent || statusPresent
	}
	return batch
}
