package reader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joseph-ayodele/doc-ingestor/constants"
)

// Config for opening containers. Zero value works when the external DJVU and
// Ghostscript tools are on PATH.
type Config struct {
	Djvused          string // if empty -> "djvused"
	Djvutxt          string // if empty -> "djvutxt"
	Ddjvu            string // if empty -> "ddjvu"
	Ps2pdf           string // if empty -> "ps2pdf"
	ArtifactCacheDir string // scratch space for format conversions; if empty -> os.TempDir

	// Runner overrides the exec runner, for tests.
	Runner Runner
}

func (c Config) withDefaults() Config {
	if c.Djvused == "" {
		c.Djvused = "djvused"
	}
	if c.Djvutxt == "" {
		c.Djvutxt = "djvutxt"
	}
	if c.Ddjvu == "" {
		c.Ddjvu = "ddjvu"
	}
	if c.Ps2pdf == "" {
		c.Ps2pdf = "ps2pdf"
	}
	if c.Runner == nil {
		c.Runner = execRunner{}
	}
	return c
}

// Open dispatches on the file extension and returns an opened Document.
// MuPDF covers PDF, EPUB, XPS, CBZ, MOBI and bare images natively; DJVU,
// PostScript and CBR need their own adapters.
func Open(ctx context.Context, cfg Config, path string) (Document, error) {
	cfg = cfg.withDefaults()

	format := constants.MapExtToFormat(filepath.Ext(path))
	switch format {
	case constants.PDF:
		return openPDF(path)
	case constants.EPUB, constants.XPS, constants.CBZ, constants.MOBI, constants.Image:
		return openFitz(path)
	case constants.DJVU:
		return openDjvu(ctx, cfg, path)
	case constants.PostScript:
		return openPostScript(ctx, cfg, path)
	case constants.CBR:
		return openCBR(path)
	default:
		return nil, fmt.Errorf("unsupported container format: %q", filepath.Ext(path))
	}
}
