package reader

import (
	"context"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// pdfDocument renders through MuPDF but extracts text through ledongthuc/pdf
// first, which is cheap and pure Go. When the fast path cannot read a page
// (uncommon encodings, odd content streams) it falls back to MuPDF text.
type pdfDocument struct {
	fitz *fitzDocument

	file   *os.File
	reader *pdf.Reader
}

func openPDF(path string) (*pdfDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, MalformedError(path, err)
	}
	d := &pdfDocument{fitz: &fitzDocument{doc: doc, pages: doc.NumPage()}}

	// Fast text path is best effort; MuPDF alone is a complete reader.
	if f, r, err := pdf.Open(path); err == nil {
		d.file, d.reader = f, r
	}
	return d, nil
}

func (d *pdfDocument) PageCount() int { return d.fitz.PageCount() }

func (d *pdfDocument) ExtractText(ctx context.Context, page int) (string, error) {
	if err := checkPage(page, d.fitz.pages); err != nil {
		return "", err
	}
	if d.reader != nil && page < d.reader.NumPage() {
		p := d.reader.Page(page + 1) // ledongthuc pages are 1-based
		if !p.V.IsNull() {
			if text, err := p.GetPlainText(nil); err == nil {
				return text, nil
			}
		}
	}
	return d.fitz.ExtractText(ctx, page)
}

func (d *pdfDocument) RenderImage(ctx context.Context, page int) (image.Image, error) {
	return d.fitz.RenderImage(ctx, page)
}

func (d *pdfDocument) Close() error {
	if d.file != nil {
		_ = d.file.Close()
	}
	return d.fitz.Close()
}
