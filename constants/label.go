package constants

// ContentLabel is the classification outcome that routes a document to one
// of the two extraction paths.
type ContentLabel string

// Stable values (store these exact strings in DB).
const (
	TextDominant  ContentLabel = "TEXT_DOMINANT"  // full text extraction -> JSON
	ImageDominant ContentLabel = "IMAGE_DOMINANT" // per-page rendering -> PNG
)

// ContentLabels holds the allowed values for the label field in ParseJob.
var ContentLabels = []string{string(TextDominant), string(ImageDominant)}
