// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/doc-ingestor/db/ent/schema"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/document"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/documentfile"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/parsejob"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/profile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[4].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescLabel is the schema descriptor for label field.
	documentDescLabel := documentFields[5].Descriptor()
	// document.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	document.LabelValidator = func() func(string) error {
		validators := documentDescLabel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(label string) error {
			for _, fn := range fns {
				if err := fn(label); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[6].Descriptor()
	// document.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	document.PageCountValidator = documentDescPageCount.Validators[0].(func(int) error)
	// documentDescArtifactPath is the schema descriptor for artifact_path field.
	documentDescArtifactPath := documentFields[7].Descriptor()
	// document.ArtifactPathValidator is a validator for the "artifact_path" field. It is called by the builders before save.
	document.ArtifactPathValidator = documentDescArtifactPath.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentfileFields := schema.DocumentFile{}.Fields()
	_ = documentfileFields
	// documentfileDescSourcePath is the schema descriptor for source_path field.
	documentfileDescSourcePath := documentfileFields[2].Descriptor()
	// documentfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	documentfile.SourcePathValidator = documentfileDescSourcePath.Validators[0].(func(string) error)
	// documentfileDescContentHash is the schema descriptor for content_hash field.
	documentfileDescContentHash := documentfileFields[3].Descriptor()
	// documentfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	documentfile.ContentHashValidator = documentfileDescContentHash.Validators[0].(func([]byte) error)
	// documentfileDescFilename is the schema descriptor for filename field.
	documentfileDescFilename := documentfileFields[4].Descriptor()
	// documentfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	documentfile.FilenameValidator = documentfileDescFilename.Validators[0].(func(string) error)
	// documentfileDescFileExt is the schema descriptor for file_ext field.
	documentfileDescFileExt := documentfileFields[5].Descriptor()
	// documentfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	documentfile.FileExtValidator = documentfileDescFileExt.Validators[0].(func(string) error)
	// documentfileDescFileSize is the schema descriptor for file_size field.
	documentfileDescFileSize := documentfileFields[6].Descriptor()
	// documentfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	documentfile.FileSizeValidator = documentfileDescFileSize.Validators[0].(func(int) error)
	// documentfileDescUploadedAt is the schema descriptor for uploaded_at field.
	documentfileDescUploadedAt := documentfileFields[7].Descriptor()
	// documentfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentfile.DefaultUploadedAt = documentfileDescUploadedAt.Default.(func() time.Time)
	// documentfileDescID is the schema descriptor for id field.
	documentfileDescID := documentfileFields[0].Descriptor()
	// documentfile.DefaultID holds the default value on creation for the id field.
	documentfile.DefaultID = documentfileDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[5].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[7].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = parsejobDescStatus.Validators[0].(func(string) error)
	// parsejobDescLabel is the schema descriptor for label field.
	parsejobDescLabel := parsejobFields[9].Descriptor()
	// parsejob.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	parsejob.LabelValidator = parsejobDescLabel.Validators[0].(func(string) error)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
