// Package reader provides per-format container adapters. Every adapter
// exposes the same Document surface: a page count, per-page text extraction
// and per-page image rendering. The document is opened once and the same
// handle serves both classification and full extraction.
package reader

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// Document is an opened container. Close must be called on every exit path;
// all methods are safe to call until then. Page indices are zero-based.
type Document interface {
	PageCount() int
	// ExtractText returns the text content of a page, "" if the page has
	// none. Implementations must not fabricate empty text for read errors.
	ExtractText(ctx context.Context, page int) (string, error)
	// RenderImage renders or extracts the page as an image.
	RenderImage(ctx context.Context, page int) (image.Image, error)
	Close() error
}

// ErrMalformed marks documents that cannot be opened or cannot report a page
// count. The batch loop logs these and continues with the next file.
var ErrMalformed = errors.New("malformed document")

// MalformedError wraps err so it matches ErrMalformed via errors.Is.
func MalformedError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
}

// ErrPageOutOfRange is returned for page indices outside [0, PageCount).
var ErrPageOutOfRange = errors.New("page index out of range")

func checkPage(page, total int) error {
	if page < 0 || page >= total {
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, total)
	}
	return nil
}
