// Package classify decides whether a document is primarily text-bearing or
// primarily image-bearing by sampling a few pages, so the pipeline can route
// it to full text extraction or per-page rendering.
package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/doc-ingestor/constants"
)

// TextSource is the slice of a container reader the classifier needs. It
// must not be mutated by classification; the same handle is reused by the
// extraction stage afterwards.
type TextSource interface {
	PageCount() int
	ExtractText(ctx context.Context, page int) (string, error)
}

// Result is the classification outcome plus the sampling audit trail that
// gets persisted on the parse job.
type Result struct {
	Label        constants.ContentLabel
	PageCount    int
	SampledPages []int
	TextPages    int
	ImagePages   int
}

// Config for the classifier.
type Config struct {
	SampleCap int     // max pages to sample; default 3
	Sampler   Sampler // default RandomSampler
}

type Classifier struct {
	cap     int
	sampler Sampler
	logger  *slog.Logger
}

func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SampleCap == 0 {
		cfg.SampleCap = 3
	}
	if cfg.SampleCap < 1 {
		return nil, fmt.Errorf("sample cap must be >= 1, got %d", cfg.SampleCap)
	}
	if cfg.Sampler == nil {
		cfg.Sampler = NewRandomSampler()
	}
	return &Classifier{cap: cfg.SampleCap, sampler: cfg.Sampler, logger: logger}, nil
}

// Classify samples min(cap, pageCount) distinct pages and labels the
// document TEXT_DOMINANT when strictly more sampled pages carry non-empty
// text than not. Ties, and documents with zero pages, resolve to
// IMAGE_DOMINANT. A text-extraction failure on a sampled page aborts
// classification with the page index attached; it is never counted as an
// image page.
func (c *Classifier) Classify(ctx context.Context, doc TextSource) (Result, error) {
	total := doc.PageCount()
	res := Result{PageCount: total}

	k := c.cap
	if total < k {
		k = total
	}
	res.SampledPages = c.sampler.Sample(total, k)

	for _, page := range res.SampledPages {
		text, err := doc.ExtractText(ctx, page)
		if err != nil {
			return res, fmt.Errorf("extract text from page %d: %w", page, err)
		}
		if strings.TrimSpace(text) != "" {
			res.TextPages++
		} else {
			res.ImagePages++
		}
	}

	if res.TextPages > res.ImagePages {
		res.Label = constants.TextDominant
	} else {
		res.Label = constants.ImageDominant
	}
	c.logger.Debug("classified document",
		"label", res.Label,
		"pages", total,
		"sampled", len(res.SampledPages),
		"text_pages", res.TextPages,
		"image_pages", res.ImagePages,
	)
	return res, nil
}
