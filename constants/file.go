package constants

import "strings"

// Format is the canonical container format for rows in parse_job.
type Format string

const (
	PDF        Format = "PDF"
	EPUB       Format = "EPUB"
	DJVU       Format = "DJVU"
	PostScript Format = "PS"
	XPS        Format = "XPS"
	CBZ        Format = "CBZ"
	CBR        Format = "CBR"
	MOBI       Format = "MOBI"
	Image      Format = "IMAGE"
)

// Formats holds the allowed values for the format field in ParseJob.
var Formats = []string{
	string(PDF), string(EPUB), string(DJVU), string(PostScript),
	string(XPS), string(CBZ), string(CBR), string(MOBI), string(Image),
}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"epub": {},
	"djvu": {},
	"ps":   {},
	"xps":  {},
	"oxps": {},
	"cbz":  {},
	"cbr":  {},
	"mobi": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

var extToFormat = map[string]Format{
	"pdf":  PDF,
	"epub": EPUB,
	"djvu": DJVU,
	"ps":   PostScript,
	"xps":  XPS,
	"oxps": XPS,
	"cbz":  CBZ,
	"cbr":  CBR,
	"mobi": MOBI,
	"jpg":  Image,
	"jpeg": Image,
	"png":  Image,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its canonical format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) Format {
	return extToFormat[NormalizeExt(ext)]
}
