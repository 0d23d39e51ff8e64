// Package processor coordinates the per-file pipeline: open the container,
// classify it, write the extraction artifact, and optionally recover text
// from image-dominant documents with OCR.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/internal/classify"
	"github.com/joseph-ayodele/doc-ingestor/internal/extract"
	"github.com/joseph-ayodele/doc-ingestor/internal/reader"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
)

type Processor struct {
	Logger     *slog.Logger
	FilesRepo  repository.DocumentFileRepository
	JobsRepo   repository.ParseJobRepository
	DocsRepo   repository.DocumentRepository
	ReaderCfg  reader.Config
	Classifier *classify.Classifier
	Extractor  *extract.Extractor
	OCR        *OCRStage // nil when OCR is disabled
}

func NewProcessor(
	logger *slog.Logger,
	files repository.DocumentFileRepository,
	jobs repository.ParseJobRepository,
	docs repository.DocumentRepository,
	readerCfg reader.Config,
	classifier *classify.Classifier,
	extractor *extract.Extractor,
	ocrStage *OCRStage,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		FilesRepo:  files,
		JobsRepo:   jobs,
		DocsRepo:   docs,
		ReaderCfg:  readerCfg,
		Classifier: classifier,
		Extractor:  extractor,
		OCR:        ocrStage,
	}
}

// ProcessFile runs the full pipeline for one ingested file and returns the
// job ID it advanced. The container is opened once and shared by the
// classification and extraction stages.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, row.ProfileID, format)
	if err != nil {
		return uuid.Nil, err
	}

	doc, err := reader.Open(ctx, p.ReaderCfg, row.SourcePath)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("open %s: %w", row.SourcePath, err))
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			p.Logger.Warn("processor.close_failed", "file_id", fileID, "error", cerr)
		}
	}()

	// Stage 1: classify
	res, err := p.Classifier.Classify(ctx, doc)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("classify: %w", err))
	}
	if err := p.JobsRepo.MarkClassified(ctx, job.ID, repository.ClassifyAudit{
		Label:        res.Label,
		PageCount:    res.PageCount,
		SampledPages: res.SampledPages,
		TextPages:    res.TextPages,
		ImagePages:   res.ImagePages,
	}); err != nil {
		return job.ID, err
	}
	p.Logger.Info("processor.classify.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"label", res.Label,
		"pages", res.PageCount,
	)

	// Stage 2: extract the artifact matching the label
	basename := strings.TrimSuffix(row.Filename, filepath.Ext(row.Filename))
	art, err := p.Extractor.Run(ctx, doc, res.Label, basename)
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("extract: %w", err))
	}

	docRow, err := p.DocsRepo.UpsertFromArtifact(ctx, &repository.CreateDocumentRequest{
		File:         row,
		Format:       format,
		Label:        res.Label,
		PageCount:    res.PageCount,
		ArtifactPath: art.Path,
	})
	if err != nil {
		return job.ID, p.fail(ctx, job.ID, fmt.Errorf("record document: %w", err))
	}
	if err := p.JobsRepo.FinishExtract(ctx, job.ID, art.Path, docRow.ID); err != nil {
		return job.ID, err
	}
	p.Logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"artifact_path", art.Path,
		"pages", art.Pages,
		"duration_ms", art.Duration.Milliseconds(),
	)

	// Stage 3: optional OCR over image artifacts. A failure here leaves the
	// job at EXTRACT_OK since the artifact is already on disk.
	if p.OCR != nil && res.Label == constants.ImageDominant {
		if err := p.OCR.Run(ctx, job.ID, docRow.ID, art.Path); err != nil {
			p.Logger.Error("processor.ocr.failed", "job_id", job.ID, "err", err)
		}
	}

	return job.ID, nil
}

func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, err error) error {
	if ferr := p.JobsRepo.FinishFailure(ctx, jobID, err.Error()); ferr != nil {
		p.Logger.Error("processor.fail_update.failed", "job_id", jobID, "err", ferr)
	}
	return err
}
