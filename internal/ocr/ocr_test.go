package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner maps "name arg1 arg2..." to canned output.
type fakeRunner struct {
	outputs map[string]string
	errors  map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	key := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errors[key]; ok {
		return nil, []byte("boom"), err
	}
	if out, ok := f.outputs[key]; ok {
		return []byte(out), nil, nil
	}
	return nil, []byte("unexpected invocation"), fmt.Errorf("no fixture for %q", key)
}

func writePages(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("page_%d.png", i))
		require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
	}
}

func TestExtractDirJoinsPagesInOrder(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 2)

	e := NewExtractor(Config{}, nil)
	e.runner = &fakeRunner{outputs: map[string]string{
		"tesseract " + filepath.Join(dir, "page_1.png") + " stdout -l eng": "first page",
		"tesseract " + filepath.Join(dir, "page_2.png") + " stdout -l eng": "second page",
	}}

	res, err := e.ExtractDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "eng", res.Language)
	assert.Equal(t, "first page\n\f\nsecond page", res.Text)
}

func TestExtractDirNumericPageOrder(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 11)

	outputs := make(map[string]string, 11)
	for i := 1; i <= 11; i++ {
		key := "tesseract " + filepath.Join(dir, fmt.Sprintf("page_%d.png", i)) + " stdout -l eng"
		outputs[key] = fmt.Sprintf("p%d", i)
	}
	e := NewExtractor(Config{}, nil)
	e.runner = &fakeRunner{outputs: outputs}

	res, err := e.ExtractDir(context.Background(), dir)
	require.NoError(t, err)
	parts := strings.Split(res.Text, "\n\f\n")
	require.Len(t, parts, 11)
	assert.Equal(t, "p1", parts[0])
	assert.Equal(t, "p9", parts[8])
	assert.Equal(t, "p10", parts[9])
	assert.Equal(t, "p11", parts[10])
}

func TestExtractDirPerPageFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 2)

	e := NewExtractor(Config{}, nil)
	e.runner = &fakeRunner{
		outputs: map[string]string{
			"tesseract " + filepath.Join(dir, "page_2.png") + " stdout -l eng": "still here",
		},
		errors: map[string]error{
			"tesseract " + filepath.Join(dir, "page_1.png") + " stdout -l eng": fmt.Errorf("exit status 1"),
		},
	}

	res, err := e.ExtractDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "still here", res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractDirAllPagesFail(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 1)

	e := NewExtractor(Config{}, nil)
	e.runner = &fakeRunner{errors: map[string]error{
		"tesseract " + filepath.Join(dir, "page_1.png") + " stdout -l eng": fmt.Errorf("exit status 1"),
	}}

	_, err := e.ExtractDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ocr failed")
}

func TestExtractDirEmptyDir(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.ExtractDir(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no page images")
}

func TestExtractDirTSVConfidence(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 1)

	page := filepath.Join(dir, "page_1.png")
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t90\thello\n" +
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t80\tworld\n" +
		"2\t1\t1\t0\t0\t0\t0\t0\t100\t100\t-1\t\n"

	e := NewExtractor(Config{EnableTSVConfidence: true}, nil)
	e.runner = &fakeRunner{outputs: map[string]string{
		"tesseract " + page + " stdout -l eng":     "hello world",
		"tesseract " + page + " stdout -l eng tsv": tsv,
	}}

	res, err := e.ExtractDir(context.Background(), dir)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, res.Confidence, 0.001)
}

func TestExtractDirMaxPages(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir, 3)

	e := NewExtractor(Config{MaxPages: 1}, nil)
	e.runner = &fakeRunner{outputs: map[string]string{
		"tesseract " + filepath.Join(dir, "page_1.png") + " stdout -l eng": "only one",
	}}

	res, err := e.ExtractDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "only one", res.Text)
	assert.Equal(t, 1, res.Pages)
}

func TestNormalize(t *testing.T) {
	in := "a\r\nb\t\tc   d\n\n\n\n\ne  \n"
	assert.Equal(t, "a\nb c d\n\ne", Normalize(in))
}

func TestMeanTSVConfidenceEmpty(t *testing.T) {
	assert.Zero(t, meanTSVConfidence("level\tconf\ttext\n"))
}

func TestMeanTSVConfidenceReadsConfColumn(t *testing.T) {
	// The word text lands in the last column and can be numeric; the value
	// averaged must come from the conf column, not the text.
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t70\t2024\n" +
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t90\t100\n" +
		"2\t1\t1\t0\t0\t0\t0\t0\t100\t100\t-1\t\n"
	assert.InDelta(t, 0.80, meanTSVConfidence(tsv), 0.001)
}
