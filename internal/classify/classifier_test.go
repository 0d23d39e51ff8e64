package classify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/doc-ingestor/constants"
)

// fakeDoc serves canned per-page text. A nil entry simulates a corrupt page.
type fakeDoc struct {
	pages []*string
}

func page(s string) *string { return &s }

func (f *fakeDoc) PageCount() int { return len(f.pages) }

func (f *fakeDoc) ExtractText(_ context.Context, i int) (string, error) {
	if f.pages[i] == nil {
		return "", fmt.Errorf("corrupt page %d", i)
	}
	return *f.pages[i], nil
}

func newClassifier(t *testing.T, cfg Config) *Classifier {
	t.Helper()
	c, err := NewClassifier(cfg, nil)
	require.NoError(t, err)
	return c
}

func TestClassifyAllText(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("alpha"), page("beta"), page("gamma"), page("delta"), page("epsilon")}}
	c := newClassifier(t, Config{})

	// random sampling, but every page has text: label must be stable
	for i := 0; i < 20; i++ {
		res, err := c.Classify(context.Background(), doc)
		require.NoError(t, err)
		assert.Equal(t, constants.TextDominant, res.Label)
		assert.Len(t, res.SampledPages, 3)
		assert.Equal(t, 3, res.TextPages)
		assert.Equal(t, 0, res.ImagePages)
	}
}

func TestClassifyAllImages(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page(""), page("   "), page("\n\t"), page("")}}
	c := newClassifier(t, Config{})

	for i := 0; i < 20; i++ {
		res, err := c.Classify(context.Background(), doc)
		require.NoError(t, err)
		assert.Equal(t, constants.ImageDominant, res.Label)
		assert.Equal(t, 0, res.TextPages)
		assert.Equal(t, 3, res.ImagePages)
	}
}

func TestClassifyTieResolvesToImage(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("some text"), page("")}}
	c := newClassifier(t, Config{Sampler: FirstK{}})

	res, err := c.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, constants.ImageDominant, res.Label)
	assert.Equal(t, 1, res.TextPages)
	assert.Equal(t, 1, res.ImagePages)
}

func TestClassifyMajorityWins(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("a"), page("b"), page("")}}
	c := newClassifier(t, Config{Sampler: FirstK{}})

	res, err := c.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, constants.TextDominant, res.Label)
}

func TestClassifySampleNeverExceedsPageCount(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("only")}}
	c := newClassifier(t, Config{SampleCap: 3})

	res, err := c.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, res.SampledPages, 1)
	assert.Equal(t, constants.TextDominant, res.Label)
}

func TestClassifyZeroPagesDefaultsToImage(t *testing.T) {
	doc := &fakeDoc{}
	c := newClassifier(t, Config{})

	res, err := c.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, constants.ImageDominant, res.Label)
	assert.Empty(t, res.SampledPages)
	assert.Equal(t, 0, res.PageCount)
}

func TestClassifyPropagatesExtractionFailure(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("fine"), nil, page("fine")}}
	c := newClassifier(t, Config{Sampler: FirstK{}})

	_, err := c.Classify(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 1")
}

func TestClassifySeededSamplerIsReproducible(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page("a"), page(""), page("b"), page(""), page("c"), page("")}}

	first, err := NewClassifier(Config{Sampler: NewSeededSampler(42)}, nil)
	require.NoError(t, err)
	second, err := NewClassifier(Config{Sampler: NewSeededSampler(42)}, nil)
	require.NoError(t, err)

	r1, err := first.Classify(context.Background(), doc)
	require.NoError(t, err)
	r2, err := second.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, r1.SampledPages, r2.SampledPages)
	assert.Equal(t, r1.Label, r2.Label)
}

func TestNewClassifierRejectsBadCap(t *testing.T) {
	_, err := NewClassifier(Config{SampleCap: -1}, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}

func TestClassifyLargerCap(t *testing.T) {
	doc := &fakeDoc{pages: []*string{page(""), page(""), page("x"), page("y"), page("z")}}
	c := newClassifier(t, Config{SampleCap: 5, Sampler: FirstK{}})

	res, err := c.Classify(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, res.SampledPages, 5)
	assert.Equal(t, constants.TextDominant, res.Label)
}
