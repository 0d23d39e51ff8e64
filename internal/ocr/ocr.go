// Package ocr recovers text from image-dominant documents by running
// tesseract over the rendered page PNGs. Model quality is tesseract's
// problem; this package only shells out and aggregates.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	MaxPages      int // 0 = no limit

	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type ExtractionResult struct {
	Text       string
	Pages      int
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ExtractDir OCRs every page_*.png in dir (the image artifact of one
// document) in page order and joins the text with form-feed page breaks.
// Per-page OCR failures become warnings; the pass fails only when no page
// could be read.
func (e *Extractor) ExtractDir(ctx context.Context, dir string) (ExtractionResult, error) {
	start := time.Now()

	matches, err := filepath.Glob(filepath.Join(dir, "page_*.png"))
	if err != nil {
		return ExtractionResult{}, err
	}
	sortPages(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return ExtractionResult{}, fmt.Errorf("no page images in %s", dir)
	}

	var b strings.Builder
	var warns []string
	var confSum float64
	var confN int
	ok := 0
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		ok++
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(Normalize(txt))

		if e.cfg.EnableTSVConfidence {
			if c, w2, err2 := e.tesseractTSVConfidence(ctx, img); err2 == nil {
				confSum += float64(c)
				confN++
				warns = append(warns, w2...)
			} else {
				warns = append(warns, err2.Error())
			}
		}
	}
	if ok == 0 {
		return ExtractionResult{Warnings: warns}, fmt.Errorf("ocr failed for all %d pages", len(matches))
	}

	res := ExtractionResult{
		Text:     b.String(),
		Pages:    len(matches),
		Language: e.cfg.TesseractLang,
		Duration: time.Since(start),
		Warnings: warns,
	}
	if confN > 0 {
		res.Confidence = float32(confSum / float64(confN))
	}
	e.logger.Debug("ocr pass finished", "dir", dir, "pages", res.Pages, "ocr_ok", ok, "confidence", res.Confidence)
	return res, nil
}

// sortPages orders page_<n>.png numerically so page_10 sorts after page_9.
func sortPages(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return pageNum(paths[i]) < pageNum(paths[j])
	})
}

func pageNum(path string) int {
	base := filepath.Base(path)
	var n int
	if _, err := fmt.Sscanf(base, "page_%d.png", &n); err != nil {
		return 0
	}
	return n
}
