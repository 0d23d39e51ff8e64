// Package extract writes the two artifact shapes a classified document can
// produce: one JSON array of per-page text, or a directory of per-page PNGs.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/internal/reader"
)

// Artifact summarizes what was written for one document.
type Artifact struct {
	Label    constants.ContentLabel
	Path     string // JSON file for text, directory for images
	Pages    int
	Duration time.Duration
}

type Extractor struct {
	outputDir string
	logger    *slog.Logger
}

func NewExtractor(outputDir string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if outputDir == "" {
		outputDir = "./out"
	}
	return &Extractor{outputDir: outputDir, logger: logger}
}

// Run routes to the extraction path matching the label.
func (e *Extractor) Run(ctx context.Context, doc reader.Document, label constants.ContentLabel, basename string) (Artifact, error) {
	switch label {
	case constants.TextDominant:
		return e.ExtractText(ctx, doc, basename)
	case constants.ImageDominant:
		return e.ExtractImages(ctx, doc, basename)
	default:
		return Artifact{}, fmt.Errorf("unknown content label: %q", label)
	}
}

// ExtractText pulls text from every page in order and writes
// <outputDir>/<basename>.json as a JSON array of strings.
func (e *Extractor) ExtractText(ctx context.Context, doc reader.Document, basename string) (Artifact, error) {
	start := time.Now()
	total := doc.PageCount()

	pages := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
		text, err := doc.ExtractText(ctx, i)
		if err != nil {
			return Artifact{}, fmt.Errorf("extract text from page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return Artifact{}, err
	}
	outPath := filepath.Join(e.outputDir, basename+".json")
	data, err := json.Marshal(pages)
	if err != nil {
		return Artifact{}, fmt.Errorf("marshal pages: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", outPath, err)
	}

	e.logger.Info("wrote text artifact", "path", outPath, "pages", total)
	return Artifact{
		Label:    constants.TextDominant,
		Path:     outPath,
		Pages:    total,
		Duration: time.Since(start),
	}, nil
}

// ExtractImages renders every page and writes
// <outputDir>/<basename>/page_<n>.png with n starting at 1.
func (e *Extractor) ExtractImages(ctx context.Context, doc reader.Document, basename string) (Artifact, error) {
	start := time.Now()
	total := doc.PageCount()

	dir := filepath.Join(e.outputDir, basename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifact{}, err
	}

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
		img, err := doc.RenderImage(ctx, i)
		if err != nil {
			return Artifact{}, fmt.Errorf("render page %d: %w", i, err)
		}
		outPath := filepath.Join(dir, fmt.Sprintf("page_%d.png", i+1))
		f, err := os.Create(outPath)
		if err != nil {
			return Artifact{}, fmt.Errorf("create %s: %w", outPath, err)
		}
		err = png.Encode(f, img)
		cerr := f.Close()
		if err != nil {
			return Artifact{}, fmt.Errorf("encode page %d: %w", i, err)
		}
		if cerr != nil {
			return Artifact{}, fmt.Errorf("close %s: %w", outPath, cerr)
		}
	}

	e.logger.Info("wrote image artifact", "dir", dir, "pages", total)
	return Artifact{
		Label:    constants.ImageDominant,
		Path:     dir,
		Pages:    total,
		Duration: time.Since(start),
	}, nil
}
