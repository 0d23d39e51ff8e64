package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Manifest is a batch description of documents to ingest. It lets operators
// hand the batch CLI an explicit file list instead of a directory walk.
type Manifest struct {
	ProfileName string          `json:"profile_name"`
	OutputDir   string          `json:"output_dir,omitempty"`
	SkipHidden  bool            `json:"skip_hidden,omitempty"`
	Entries     []ManifestEntry `json:"entries"`
}

type ManifestEntry struct {
	Path   string `json:"path"`
	Format string `json:"format,omitempty"` // declared format, cross-checked against the extension mapping
}

// VerifyFormat checks the declared entry format against the format the file
// extension actually mapped to. Entries without a declared format pass.
func (e ManifestEntry) VerifyFormat(actual string) error {
	if e.Format == "" || e.Format == actual {
		return nil
	}
	return fmt.Errorf("manifest entry %s: declared format %s but extension maps to %s", e.Path, e.Format, actual)
}

const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["profile_name", "entries"],
  "properties": {
    "profile_name": {"type": "string", "minLength": 1},
    "output_dir": {"type": "string"},
    "skip_hidden": {"type": "boolean"},
    "entries": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["path"],
        "properties": {
          "path": {"type": "string", "minLength": 1},
          "format": {
            "type": "string",
            "enum": ["PDF", "EPUB", "DJVU", "PS", "XPS", "CBZ", "CBR", "MOBI", "IMAGE"]
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var compiledManifestSchema = jsonschema.MustCompileString("manifest.schema.json", manifestSchema)

// LoadManifest reads, schema-validates and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest validates raw manifest JSON against the schema before decoding.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest is not valid JSON: %w", err)
	}
	if err := compiledManifestSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("manifest validation: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	for idx, e := range m.Entries {
		if strings.TrimSpace(e.Path) == "" {
			return nil, fmt.Errorf("manifest entry %d: empty path", idx)
		}
	}
	return &m, nil
}
