package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/doc-ingestor/constants"
)

// fakeDoc implements reader.Document over in-memory pages.
type fakeDoc struct {
	texts  []string
	failOn int // page index that errors; -1 for none
}

func newFakeDoc(texts ...string) *fakeDoc {
	return &fakeDoc{texts: texts, failOn: -1}
}

func (f *fakeDoc) PageCount() int { return len(f.texts) }

func (f *fakeDoc) ExtractText(_ context.Context, i int) (string, error) {
	if i == f.failOn {
		return "", fmt.Errorf("damaged content stream")
	}
	return f.texts[i], nil
}

func (f *fakeDoc) RenderImage(_ context.Context, i int) (image.Image, error) {
	if i == f.failOn {
		return nil, fmt.Errorf("damaged content stream")
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	return img, nil
}

func (f *fakeDoc) Close() error { return nil }

func TestExtractTextRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.ExtractText(context.Background(), newFakeDoc("A", "B", "C"), "report")
	require.NoError(t, err)
	assert.Equal(t, constants.TextDominant, art.Label)
	assert.Equal(t, 3, art.Pages)
	assert.Equal(t, filepath.Join(dir, "report.json"), art.Path)

	data, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	var pages []string
	require.NoError(t, json.Unmarshal(data, &pages))
	assert.Equal(t, []string{"A", "B", "C"}, pages)
}

func TestExtractTextTrimsPages(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.ExtractText(context.Background(), newFakeDoc("  padded \n", "\t"), "doc")
	require.NoError(t, err)

	data, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	var pages []string
	require.NoError(t, json.Unmarshal(data, &pages))
	assert.Equal(t, []string{"padded", ""}, pages)
}

func TestExtractImagesNaming(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.ExtractImages(context.Background(), newFakeDoc("", ""), "scan")
	require.NoError(t, err)
	assert.Equal(t, constants.ImageDominant, art.Label)
	assert.Equal(t, filepath.Join(dir, "scan"), art.Path)

	for n := 1; n <= 2; n++ {
		_, err := os.Stat(filepath.Join(dir, "scan", fmt.Sprintf("page_%d.png", n)))
		assert.NoError(t, err, "page_%d.png", n)
	}
	_, err = os.Stat(filepath.Join(dir, "scan", "page_3.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractTextZeroPages(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.ExtractText(context.Background(), newFakeDoc(), "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, art.Pages)

	data, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestExtractImagesZeroPages(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.ExtractImages(context.Background(), newFakeDoc(), "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, art.Pages)

	entries, err := os.ReadDir(art.Path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractTextFailureCarriesPageIndex(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	doc := newFakeDoc("ok", "ok", "ok")
	doc.failOn = 1
	_, err := e.ExtractText(context.Background(), doc, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 1")
}

func TestRunRoutesByLabel(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir, nil)

	art, err := e.Run(context.Background(), newFakeDoc("x"), constants.TextDominant, "a")
	require.NoError(t, err)
	assert.Equal(t, constants.TextDominant, art.Label)

	art, err = e.Run(context.Background(), newFakeDoc(""), constants.ImageDominant, "b")
	require.NoError(t, err)
	assert.Equal(t, constants.ImageDominant, art.Label)

	_, err = e.Run(context.Background(), newFakeDoc(), "BOGUS", "c")
	assert.Error(t, err)
}
