package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifestValid(t *testing.T) {
	data := []byte(`{
		"profile_name": "library",
		"output_dir": "/tmp/out",
		"entries": [
			{"path": "/books/a.pdf"},
			{"path": "/books/b.djvu", "format": "DJVU"}
		]
	}`)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, "library", m.ProfileName)
	assert.Equal(t, "/tmp/out", m.OutputDir)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "DJVU", m.Entries[1].Format)
}

func TestParseManifestRejectsMissingProfile(t *testing.T) {
	_, err := ParseManifest([]byte(`{"entries": [{"path": "/a.pdf"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest validation")
}

func TestParseManifestRejectsEmptyEntries(t *testing.T) {
	_, err := ParseManifest([]byte(`{"profile_name": "x", "entries": []}`))
	assert.Error(t, err)
}

func TestParseManifestRejectsUnknownFormat(t *testing.T) {
	_, err := ParseManifest([]byte(`{
		"profile_name": "x",
		"entries": [{"path": "/a.bin", "format": "TARBALL"}]
	}`))
	assert.Error(t, err)
}

func TestParseManifestRejectsUnknownKeys(t *testing.T) {
	_, err := ParseManifest([]byte(`{
		"profile_name": "x",
		"entries": [{"path": "/a.pdf"}],
		"surprise": true
	}`))
	assert.Error(t, err)
}

func TestParseManifestRejectsGarbage(t *testing.T) {
	_, err := ParseManifest([]byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestManifestEntryVerifyFormat(t *testing.T) {
	e := ManifestEntry{Path: "/books/a.epub", Format: "EPUB"}
	require.NoError(t, e.VerifyFormat("EPUB"))

	err := e.VerifyFormat("PDF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared format EPUB")

	// no declared format means the extension mapping stands
	assert.NoError(t, ManifestEntry{Path: "/books/b.pdf"}.VerifyFormat("PDF"))
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"profile_name": "library",
		"entries": [{"path": "/books/a.epub"}]
	}`), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "library", m.ProfileName)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
