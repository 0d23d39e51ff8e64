package reader

import (
	"context"
	"image"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument adapts a MuPDF handle. MuPDF parses PDF, EPUB, XPS/OXPS, CBZ,
// MOBI, FB2 and plain images behind one API, so this single adapter covers
// most ingest formats.
type fitzDocument struct {
	doc   *fitz.Document
	pages int
}

func openFitz(path string) (*fitzDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, MalformedError(path, err)
	}
	return &fitzDocument{doc: doc, pages: doc.NumPage()}, nil
}

func (d *fitzDocument) PageCount() int { return d.pages }

func (d *fitzDocument) ExtractText(_ context.Context, page int) (string, error) {
	if err := checkPage(page, d.pages); err != nil {
		return "", err
	}
	return d.doc.Text(page)
}

func (d *fitzDocument) RenderImage(_ context.Context, page int) (image.Image, error) {
	if err := checkPage(page, d.pages); err != nil {
		return nil, err
	}
	return d.doc.Image(page)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
