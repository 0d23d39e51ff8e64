package reader

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nwaples/rardecode/v2"
)

var comicImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
}

// cbrDocument reads a RAR comic archive. Image entries sorted by name are
// the pages; comic archives carry no text layer so ExtractText is always
// empty. Entries are decompressed up front since RAR offers no random
// access.
type cbrDocument struct {
	names []string
	pages [][]byte
}

func openCBR(path string) (*cbrDocument, error) {
	rc, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, MalformedError(path, err)
	}
	defer rc.Close()

	d := &cbrDocument{}
	for {
		hdr, err := rc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, MalformedError(path, err)
		}
		if hdr.IsDir {
			continue
		}
		ext := strings.ToLower(filepath.Ext(hdr.Name))
		if _, ok := comicImageExts[ext]; !ok {
			continue
		}
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, MalformedError(path, err)
		}
		d.names = append(d.names, hdr.Name)
		d.pages = append(d.pages, data)
	}

	sort.Sort(byName{d})
	return d, nil
}

type byName struct{ d *cbrDocument }

func (s byName) Len() int           { return len(s.d.names) }
func (s byName) Less(i, j int) bool { return s.d.names[i] < s.d.names[j] }
func (s byName) Swap(i, j int) {
	s.d.names[i], s.d.names[j] = s.d.names[j], s.d.names[i]
	s.d.pages[i], s.d.pages[j] = s.d.pages[j], s.d.pages[i]
}

func (d *cbrDocument) PageCount() int { return len(d.pages) }

func (d *cbrDocument) ExtractText(_ context.Context, page int) (string, error) {
	if err := checkPage(page, len(d.pages)); err != nil {
		return "", err
	}
	return "", nil
}

func (d *cbrDocument) RenderImage(_ context.Context, page int) (image.Image, error) {
	if err := checkPage(page, len(d.pages)); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(d.pages[page]))
	return img, err
}

func (d *cbrDocument) Close() error { return nil }
