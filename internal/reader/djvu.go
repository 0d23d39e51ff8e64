package reader

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// djvuDocument shells out to the DjVuLibre tools: djvused for the page
// count, djvutxt for per-page text. Rendering converts the whole file to an
// image-only PDF with ddjvu once, lazily, and delegates to MuPDF from there;
// text-dominant documents never pay for the conversion.
type djvuDocument struct {
	path  string
	cfg   Config
	pages int

	mu       sync.Mutex
	rendered *fitzDocument
	tmpPDF   string
}

func openDjvu(ctx context.Context, cfg Config, path string) (*djvuDocument, error) {
	out, _, err := cfg.Runner.Run(ctx, cfg.Djvused, "-e", "n", path)
	if err != nil {
		return nil, MalformedError(path, err)
	}
	pages, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return nil, MalformedError(path, fmt.Errorf("unexpected djvused output %q: %w", out, err))
	}
	return &djvuDocument{path: path, cfg: cfg, pages: pages}, nil
}

func (d *djvuDocument) PageCount() int { return d.pages }

func (d *djvuDocument) ExtractText(ctx context.Context, page int) (string, error) {
	if err := checkPage(page, d.pages); err != nil {
		return "", err
	}
	// djvutxt pages are 1-based
	out, _, err := d.cfg.Runner.Run(ctx, d.cfg.Djvutxt, fmt.Sprintf("--page=%d", page+1), d.path)
	if err != nil {
		return "", fmt.Errorf("djvutxt page %d: %w", page, err)
	}
	return string(out), nil
}

func (d *djvuDocument) RenderImage(ctx context.Context, page int) (image.Image, error) {
	if err := checkPage(page, d.pages); err != nil {
		return nil, err
	}
	rendered, err := d.renderedPDF(ctx)
	if err != nil {
		return nil, err
	}
	return rendered.RenderImage(ctx, page)
}

func (d *djvuDocument) renderedPDF(ctx context.Context) (*fitzDocument, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rendered != nil {
		return d.rendered, nil
	}

	dir := d.cfg.ArtifactCacheDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(d.path), filepath.Ext(d.path))
	tmpPDF := filepath.Join(dir, base+".render.pdf")

	if _, errb, err := d.cfg.Runner.Run(ctx, d.cfg.Ddjvu, "-format=pdf", d.path, tmpPDF); err != nil {
		return nil, fmt.Errorf("ddjvu convert: %w: %s", err, truncate(string(errb), 1<<10))
	}
	doc, err := openFitz(tmpPDF)
	if err != nil {
		_ = os.Remove(tmpPDF)
		return nil, err
	}
	d.rendered, d.tmpPDF = doc, tmpPDF
	return doc, nil
}

func (d *djvuDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var err error
	if d.rendered != nil {
		err = d.rendered.Close()
		d.rendered = nil
	}
	if d.tmpPDF != "" {
		_ = os.Remove(d.tmpPDF)
		d.tmpPDF = ""
	}
	return err
}
