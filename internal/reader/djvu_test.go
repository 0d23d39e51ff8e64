package reader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner maps "cmd arg1 arg2..." to canned output.
type fakeRunner struct {
	outputs map[string]string
	fail    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	key := name
	for _, a := range args {
		key += " " + a
	}
	f.calls = append(f.calls, key)
	if err, ok := f.fail[key]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(f.outputs[key]), nil, nil
}

func TestOpenDjvuPageCount(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"djvused -e n book.djvu": "12\n",
	}}
	cfg := Config{Runner: r}.withDefaults()

	doc, err := openDjvu(context.Background(), cfg, "book.djvu")
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 12, doc.PageCount())
}

func TestOpenDjvuBadOutputIsMalformed(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"djvused -e n book.djvu": "not a number",
	}}
	cfg := Config{Runner: r}.withDefaults()

	_, err := openDjvu(context.Background(), cfg, "book.djvu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestOpenDjvuToolFailureIsMalformed(t *testing.T) {
	r := &fakeRunner{fail: map[string]error{
		"djvused -e n book.djvu": fmt.Errorf("exit status 1"),
	}}
	cfg := Config{Runner: r}.withDefaults()

	_, err := openDjvu(context.Background(), cfg, "book.djvu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestDjvuExtractTextUsesOneBasedPages(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"djvused -e n book.djvu":     "2",
		"djvutxt --page=1 book.djvu": "first page",
		"djvutxt --page=2 book.djvu": "second page",
	}}
	cfg := Config{Runner: r}.withDefaults()

	doc, err := openDjvu(context.Background(), cfg, "book.djvu")
	require.NoError(t, err)
	defer doc.Close()

	text, err := doc.ExtractText(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "first page", text)

	text, err = doc.ExtractText(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "second page", text)
}

func TestDjvuExtractTextOutOfRange(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"djvused -e n book.djvu": "2",
	}}
	cfg := Config{Runner: r}.withDefaults()

	doc, err := openDjvu(context.Background(), cfg, "book.djvu")
	require.NoError(t, err)
	defer doc.Close()

	_, err = doc.ExtractText(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrPageOutOfRange))

	_, err = doc.ExtractText(context.Background(), -1)
	assert.True(t, errors.Is(err, ErrPageOutOfRange))
}
