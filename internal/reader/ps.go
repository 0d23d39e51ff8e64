package reader

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// psDocument converts PostScript to PDF once with Ghostscript's ps2pdf and
// serves everything from the converted file. The temp PDF lives in the
// artifact cache dir and is removed on Close.
type psDocument struct {
	pdf    *pdfDocument
	tmpPDF string
}

func openPostScript(ctx context.Context, cfg Config, path string) (*psDocument, error) {
	dir := cfg.ArtifactCacheDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tmpPDF := filepath.Join(dir, base+".convert.pdf")

	if _, errb, err := cfg.Runner.Run(ctx, cfg.Ps2pdf, path, tmpPDF); err != nil {
		return nil, MalformedError(path, fmt.Errorf("ps2pdf: %w: %s", err, truncate(string(errb), 1<<10)))
	}

	doc, err := openPDF(tmpPDF)
	if err != nil {
		_ = os.Remove(tmpPDF)
		return nil, err
	}
	return &psDocument{pdf: doc, tmpPDF: tmpPDF}, nil
}

func (d *psDocument) PageCount() int { return d.pdf.PageCount() }

func (d *psDocument) ExtractText(ctx context.Context, page int) (string, error) {
	return d.pdf.ExtractText(ctx, page)
}

func (d *psDocument) RenderImage(ctx context.Context, page int) (image.Image, error) {
	return d.pdf.RenderImage(ctx, page)
}

func (d *psDocument) Close() error {
	err := d.pdf.Close()
	_ = os.Remove(d.tmpPDF)
	return err
}
