package reader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUnsupportedExtension(t *testing.T) {
	_, err := Open(context.Background(), Config{}, "notes.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported container format")
}

func TestOpenMissingFileIsMalformed(t *testing.T) {
	_, err := Open(context.Background(), Config{}, t.TempDir()+"/does-not-exist.cbr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, "djvused", cfg.Djvused)
	assert.Equal(t, "djvutxt", cfg.Djvutxt)
	assert.Equal(t, "ddjvu", cfg.Ddjvu)
	assert.Equal(t, "ps2pdf", cfg.Ps2pdf)
	assert.NotNil(t, cfg.Runner)
}
