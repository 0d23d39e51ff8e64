package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/internal/classify"
	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/export"
	"github.com/joseph-ayodele/doc-ingestor/internal/extract"
	"github.com/joseph-ayodele/doc-ingestor/internal/ingest"
	"github.com/joseph-ayodele/doc-ingestor/internal/ocr"
	pipeline "github.com/joseph-ayodele/doc-ingestor/internal/pipeline"
	"github.com/joseph-ayodele/doc-ingestor/internal/reader"
	repo "github.com/joseph-ayodele/doc-ingestor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to ingest documents from")
		manifest = flag.String("manifest", "", "batch manifest JSON file (alternative to --dir)")
		out      = flag.String("out", "", "output XLSX inventory path (optional, defaults next to input)")
		profName = flag.String("profile", "Local Batch", "profile name to ingest under")
	)
	flag.Parse()

	if *dir == "" && *manifest == "" {
		printError("Error: --dir or --manifest is required\n")
		os.Exit(1)
	}
	if *dir != "" && *manifest != "" {
		printError("Error: --dir and --manifest are mutually exclusive\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	// Manifest can override the profile and output directory.
	var m *ingest.Manifest
	if *manifest != "" {
		var err error
		m, err = ingest.LoadManifest(*manifest)
		if err != nil {
			logger.Error("failed to load manifest", "path", *manifest, "error", err)
			os.Exit(1)
		}
		*profName = m.ProfileName
		if m.OutputDir != "" {
			cfg.Pipeline.OutputDir = m.OutputDir
		}
	}

	if *out == "" {
		base := *dir
		if base == "" {
			base = filepath.Dir(*manifest)
		}
		*out = filepath.Join(filepath.Dir(base), "documents.xlsx")
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

	profile, err := profilesRepo.EnsureProfile(ctx, *profName)
	if err != nil {
		logger.Error("failed to get or create profile", "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", profile.ID, "name", profile.Name)

	classifierCfg := classify.Config{SampleCap: cfg.Pipeline.SampleCap}
	if cfg.Pipeline.Deterministic {
		classifierCfg.Sampler = classify.FirstK{}
	}
	classifier, err := classify.NewClassifier(classifierCfg, logger)
	if err != nil {
		logger.Error("failed to build classifier", "error", err)
		os.Exit(1)
	}

	readerCfg := reader.Config{
		Djvused:          cfg.Reader.Djvused,
		Djvutxt:          cfg.Reader.Djvutxt,
		Ddjvu:            cfg.Reader.Ddjvu,
		Ps2pdf:           cfg.Reader.Ps2pdf,
		ArtifactCacheDir: cfg.Reader.ArtifactCacheDir,
	}
	extractor := extract.NewExtractor(cfg.Pipeline.OutputDir, logger)

	var ocrStage *pipeline.OCRStage
	if cfg.OCR.Enabled {
		ocrExtractor := ocr.NewExtractor(ocr.Config{
			Tesseract:           cfg.OCR.Tesseract,
			TesseractLang:       cfg.OCR.TesseractLang,
			TessdataDir:         cfg.OCR.TessdataDir,
			EnableTSVConfidence: true,
		}, logger)
		ocrStage = pipeline.NewOCRStage(jobsRepo, docsRepo, ocrExtractor, logger)
	}

	processor := pipeline.NewProcessor(logger, filesRepo, jobsRepo, docsRepo, readerCfg, classifier, extractor, ocrStage)
	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	// Ingest from manifest entries or a directory walk.
	var results []ingest.IngestionResult
	if m != nil {
		logger.Info("starting manifest ingestion", "entries", len(m.Entries), "profile", profile.ID)
		for _, entry := range m.Entries {
			r, err := ingestor.IngestPath(ctx, profile.ID, entry.Path)
			if err != nil {
				results = append(results, ingest.IngestionResult{SourcePath: entry.Path, Err: err.Error()})
				continue
			}
			if err := entry.VerifyFormat(r.Format); err != nil {
				logger.Error("manifest format mismatch", "path", entry.Path, "error", err)
				r.Err = err.Error()
			}
			results = append(results, r)
		}
	} else {
		logger.Info("starting ingestion", "dir", *dir, "profile", profile.ID)
		var stats ingest.DirStats
		results, stats, err = ingestor.IngestDirectory(ctx, profile.ID, *dir, true)
		if err != nil {
			logger.Error("failed to ingest directory", "error", err)
			os.Exit(1)
		}
		logger.Info("ingestion complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"deduplicated", stats.Deduplicated)
	}

	var ingested []uuid.UUID
	for _, result := range results {
		if result.Err != "" {
			logger.Error("ingest failed", "path", result.SourcePath, "error", result.Err)
			continue
		}
		fileID, err := uuid.Parse(result.FileID)
		if err != nil {
			logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
			continue
		}
		ingested = append(ingested, fileID)
	}

	processed := 0
	failures := 0
	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		if _, err := processor.ProcessFile(ctx, fileID); err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting inventory", "output", *out)
	exportService := export.NewService(docsRepo, filesRepo, logger)
	xlsxBytes, err := exportService.ExportDocumentsXLSX(ctx, profile.ID, nil)
	if err != nil {
		logger.Error("failed to export documents", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
