package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/internal/ocr"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
)

type OCRStage struct {
	JobsRepo  repository.ParseJobRepository
	DocsRepo  repository.DocumentRepository
	Extractor *ocr.Extractor
	Logger    *slog.Logger
}

func NewOCRStage(jobs repository.ParseJobRepository, docs repository.DocumentRepository, ex *ocr.Extractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{JobsRepo: jobs, DocsRepo: docs, Extractor: ex, Logger: logger}
}

// Run OCRs the rendered pages under artifactDir and persists the recovered
// text on both the job and the document.
func (s *OCRStage) Run(ctx context.Context, jobID, documentID uuid.UUID, artifactDir string) error {
	res, err := s.Extractor.ExtractDir(ctx, artifactDir)
	if err != nil {
		return fmt.Errorf("ocr %s: %w", artifactDir, err)
	}
	for _, w := range res.Warnings {
		s.Logger.Warn("ocr warning", "job_id", jobID, "warning", w)
	}

	if err := s.JobsRepo.FinishOCR(ctx, jobID, res.Text, res.Confidence); err != nil {
		return err
	}
	if err := s.DocsRepo.SetOCRText(ctx, documentID, res.Text); err != nil {
		return err
	}

	s.Logger.Info("ocr stage finished",
		"job_id", jobID,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return nil
}
