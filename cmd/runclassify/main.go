package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/doc-ingestor/internal/classify"
	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/reader"
)

// One-shot classification of a single document, no database involved.
// Useful for eyeballing what the pipeline would decide for a file.
func main() {
	var (
		file          = flag.String("file", "", "document to classify (required)")
		sampleCap     = flag.Int("cap", 3, "max pages to sample")
		deterministic = flag.Bool("deterministic", false, "sample the first pages instead of random ones")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: runclassify --file <document> [--cap N] [--deterministic]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Pipeline.ProcessTimeout)
	defer cancel()

	doc, err := reader.Open(ctx, reader.Config{
		Djvused:          cfg.Reader.Djvused,
		Djvutxt:          cfg.Reader.Djvutxt,
		Ddjvu:            cfg.Reader.Ddjvu,
		Ps2pdf:           cfg.Reader.Ps2pdf,
		ArtifactCacheDir: cfg.Reader.ArtifactCacheDir,
	}, *file)
	if err != nil {
		logger.Error("open document", "file", *file, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.Warn("close document", "error", cerr)
		}
	}()

	classifierCfg := classify.Config{SampleCap: *sampleCap}
	if *deterministic {
		classifierCfg.Sampler = classify.FirstK{}
	}
	classifier, err := classify.NewClassifier(classifierCfg, logger)
	if err != nil {
		logger.Error("build classifier", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := classifier.Classify(ctx, doc)
	if err != nil {
		logger.Error("classification failed", "file", *file, "error", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(struct {
		File         string `json:"file"`
		Label        string `json:"label"`
		PageCount    int    `json:"page_count"`
		SampledPages []int  `json:"sampled_pages"`
		TextPages    int    `json:"text_pages"`
		ImagePages   int    `json:"image_pages"`
		DurationMS   int64  `json:"duration_ms"`
	}{
		File:         *file,
		Label:        string(res.Label),
		PageCount:    res.PageCount,
		SampledPages: res.SampledPages,
		TextPages:    res.TextPages,
		ImagePages:   res.ImagePages,
		DurationMS:   time.Since(start).Milliseconds(),
	}, "", "  ")
	fmt.Println(string(out))
}
