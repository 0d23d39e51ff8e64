package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/joseph-ayodele/doc-ingestor/gen/proto/docingest/v1"
	"github.com/joseph-ayodele/doc-ingestor/internal/async"
	"github.com/joseph-ayodele/doc-ingestor/internal/classify"
	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/documents"
	"github.com/joseph-ayodele/doc-ingestor/internal/export"
	"github.com/joseph-ayodele/doc-ingestor/internal/extract"
	"github.com/joseph-ayodele/doc-ingestor/internal/ingest"
	"github.com/joseph-ayodele/doc-ingestor/internal/ocr"
	pipeline "github.com/joseph-ayodele/doc-ingestor/internal/pipeline"
	"github.com/joseph-ayodele/doc-ingestor/internal/profiles"
	"github.com/joseph-ayodele/doc-ingestor/internal/reader"
	repo "github.com/joseph-ayodele/doc-ingestor/internal/repository"
	svc "github.com/joseph-ayodele/doc-ingestor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewDocumentFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)

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

	queue := async.NewProcessorQueue(processor, logger, async.Options{
		Workers:  6,
		Capacity: 512,
	})

	// Optional watch mode: WATCH_DIRS=/a,/b WATCH_PROFILE=library
	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		if err := startWatchMode(ctx, dirs, ingestor, profilesRepo, queue, logger); err != nil {
			logger.Error("failed to start watch mode", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	profilesService := profiles.NewService(profilesRepo, logger)
	v1.RegisterProfilesServiceServer(grpcServer, svc.NewProfileServer(profilesService, logger))

	documentsService := documents.NewService(docsRepo, jobsRepo, logger)
	v1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsServer(documentsService, logger))

	ingestionService := svc.NewIngestionService(ingestor, processor, profilesRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	exportService := export.NewService(docsRepo, filesRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("doc-ingestor listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

// startWatchMode ingests and enqueues documents as they appear under the
// watched directories.
func startWatchMode(
	ctx context.Context,
	dirs string,
	ingestor ingest.Ingestor,
	profilesRepo repo.ProfileRepository,
	queue async.Queue,
	logger *slog.Logger,
) error {
	profileName := os.Getenv("WATCH_PROFILE")
	if profileName == "" {
		profileName = "Watched"
	}
	profile, err := profilesRepo.EnsureProfile(ctx, profileName)
	if err != nil {
		return err
	}

	roots := strings.Split(dirs, ",")
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	})
	if err != nil {
		return err
	}
	logger.Info("watching directories", "roots", roots, "profile", profile.Name)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-events:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, profile.ID, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				if r.Deduplicated {
					logger.Debug("watch skipping duplicate", "path", path)
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				if err := queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()}); err != nil {
					logger.Error("enqueue failed", "file_id", r.FileID, "error", err)
				}
			case werr, ok := <-errs:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", werr)
			}
		}
	}()
	return nil
}
