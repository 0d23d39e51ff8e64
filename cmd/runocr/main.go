package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/ocr"
)

// Runs OCR over an image artifact directory (the page_N.png files written by
// the extraction stage) and prints the recovered text to stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <artifact-dir>")
		os.Exit(2)
	}
	dir := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		EnableTSVConfidence: true,
	}, logger)

	start := time.Now()
	res, err := extractor.ExtractDir(ctx, dir)
	if err != nil {
		logger.Error("ocr failed", "dir", dir, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("ocr OK",
		"dir", dir,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"confidence", res.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if _, err := os.Stdout.WriteString(res.Text + "\n"); err != nil {
		os.Exit(1)
	}
}
