// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/document"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/documentfile"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/parsejob"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/predicate"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent/profile"
)

// ParseJobUpdate is the builder for updating ParseJob entities.
type ParseJobUpdate struct {
	config
	hooks    []Hook
	mutation *ParseJobMutation
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdate) Where(ps ...predicate.ParseJob) *ParseJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdate) SetFileID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFileID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ParseJobUpdate) SetProfileID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableProfileID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ParseJobUpdate) SetDocumentID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ParseJobUpdate) ClearDocumentID() *ParseJobUpdate {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdate) SetFormat(v string) *ParseJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFormat(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdate) SetStartedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStartedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdate) SetFinishedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFinishedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdate) ClearFinishedAt() *ParseJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdate) SetStatus(v string) *ParseJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdate) ClearStatus() *ParseJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdate) SetErrorMessage(v string) *ParseJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableErrorMessage(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdate) ClearErrorMessage() *ParseJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLabel sets the "label" field.
func (_u *ParseJobUpdate) SetLabel(v string) *ParseJobUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableLabel(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ParseJobUpdate) ClearLabel() *ParseJobUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ParseJobUpdate) SetPageCount(v int) *ParseJobUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillablePageCount(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ParseJobUpdate) AddPageCount(v int) *ParseJobUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *ParseJobUpdate) ClearPageCount() *ParseJobUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetSampledPages sets the "sampled_pages" field.
func (_u *ParseJobUpdate) SetSampledPages(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.SetSampledPages(v)
	return _u
}

// AppendSampledPages appends value to the "sampled_pages" field.
func (_u *ParseJobUpdate) AppendSampledPages(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.AppendSampledPages(v)
	return _u
}

// ClearSampledPages clears the value of the "sampled_pages" field.
func (_u *ParseJobUpdate) ClearSampledPages() *ParseJobUpdate {
	_u.mutation.ClearSampledPages()
	return _u
}

// SetTextPages sets the "text_pages" field.
func (_u *ParseJobUpdate) SetTextPages(v int) *ParseJobUpdate {
	_u.mutation.ResetTextPages()
	_u.mutation.SetTextPages(v)
	return _u
}

// SetNillableTextPages sets the "text_pages" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableTextPages(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetTextPages(*v)
	}
	return _u
}

// AddTextPages adds value to the "text_pages" field.
func (_u *ParseJobUpdate) AddTextPages(v int) *ParseJobUpdate {
	_u.mutation.AddTextPages(v)
	return _u
}

// ClearTextPages clears the value of the "text_pages" field.
func (_u *ParseJobUpdate) ClearTextPages() *ParseJobUpdate {
	_u.mutation.ClearTextPages()
	return _u
}

// SetImagePages sets the "image_pages" field.
func (_u *ParseJobUpdate) SetImagePages(v int) *ParseJobUpdate {
	_u.mutation.ResetImagePages()
	_u.mutation.SetImagePages(v)
	return _u
}

// SetNillableImagePages sets the "image_pages" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableImagePages(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetImagePages(*v)
	}
	return _u
}

// AddImagePages adds value to the "image_pages" field.
func (_u *ParseJobUpdate) AddImagePages(v int) *ParseJobUpdate {
	_u.mutation.AddImagePages(v)
	return _u
}

// ClearImagePages clears the value of the "image_pages" field.
func (_u *ParseJobUpdate) ClearImagePages() *ParseJobUpdate {
	_u.mutation.ClearImagePages()
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *ParseJobUpdate) SetArtifactPath(v string) *ParseJobUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableArtifactPath(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *ParseJobUpdate) ClearArtifactPath() *ParseJobUpdate {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ParseJobUpdate) SetOcrText(v string) *ParseJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableOcrText(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ParseJobUpdate) ClearOcrText() *ParseJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ParseJobUpdate) SetOcrConfidence(v float32) *ParseJobUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableOcrConfidence(v *float32) *ParseJobUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ParseJobUpdate) AddOcrConfidence(v float32) *ParseJobUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ParseJobUpdate) ClearOcrConfidence() *ParseJobUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) SetFile(v *DocumentFile) *ParseJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ParseJobUpdate) SetProfile(v *Profile) *ParseJobUpdate {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ParseJobUpdate) SetDocument(v *Document) *ParseJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdate) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) ClearFile() *ParseJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ParseJobUpdate) ClearProfile() *ParseJobUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ParseJobUpdate) ClearDocument() *ParseJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := parsejob.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ParseJob.label": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.profile"`)
	}
	return nil
}

func (_u *ParseJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(parsejob.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(parsejob.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(parsejob.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SampledPages(); ok {
		_spec.SetField(parsejob.FieldSampledPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampledPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldSampledPages, value)
		})
	}
	if _u.mutation.SampledPagesCleared() {
		_spec.ClearField(parsejob.FieldSampledPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextPages(); ok {
		_spec.SetField(parsejob.FieldTextPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextPages(); ok {
		_spec.AddField(parsejob.FieldTextPages, field.TypeInt, value)
	}
	if _u.mutation.TextPagesCleared() {
		_spec.ClearField(parsejob.FieldTextPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ImagePages(); ok {
		_spec.SetField(parsejob.FieldImagePages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagePages(); ok {
		_spec.AddField(parsejob.FieldImagePages, field.TypeInt, value)
	}
	if _u.mutation.ImagePagesCleared() {
		_spec.ClearField(parsejob.FieldImagePages, field.TypeInt)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(parsejob.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(parsejob.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(parsejob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(parsejob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(parsejob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(parsejob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(parsejob.FieldOcrConfidence, field.TypeFloat32)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProfileTable,
			Columns: []string{parsejob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProfileTable,
			Columns: []string{parsejob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.DocumentTable,
			Columns: []string{parsejob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.DocumentTable,
			Columns: []string{parsejob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseJobUpdateOne is the builder for updating a single ParseJob entity.
type ParseJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdateOne) SetFileID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ParseJobUpdateOne) SetProfileID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableProfileID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ParseJobUpdateOne) SetDocumentID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// ClearDocumentID clears the value of the "document_id" field.
func (_u *ParseJobUpdateOne) ClearDocumentID() *ParseJobUpdateOne {
	_u.mutation.ClearDocumentID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdateOne) SetFormat(v string) *ParseJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFormat(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdateOne) SetStartedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStartedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdateOne) SetFinishedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdateOne) ClearFinishedAt() *ParseJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdateOne) SetStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdateOne) ClearStatus() *ParseJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdateOne) SetErrorMessage(v string) *ParseJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableErrorMessage(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdateOne) ClearErrorMessage() *ParseJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLabel sets the "label" field.
func (_u *ParseJobUpdateOne) SetLabel(v string) *ParseJobUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableLabel(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ParseJobUpdateOne) ClearLabel() *ParseJobUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ParseJobUpdateOne) SetPageCount(v int) *ParseJobUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillablePageCount(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ParseJobUpdateOne) AddPageCount(v int) *ParseJobUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *ParseJobUpdateOne) ClearPageCount() *ParseJobUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetSampledPages sets the "sampled_pages" field.
func (_u *ParseJobUpdateOne) SetSampledPages(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.SetSampledPages(v)
	return _u
}

// AppendSampledPages appends value to the "sampled_pages" field.
func (_u *ParseJobUpdateOne) AppendSampledPages(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.AppendSampledPages(v)
	return _u
}

// ClearSampledPages clears the value of the "sampled_pages" field.
func (_u *ParseJobUpdateOne) ClearSampledPages() *ParseJobUpdateOne {
	_u.mutation.ClearSampledPages()
	return _u
}

// SetTextPages sets the "text_pages" field.
func (_u *ParseJobUpdateOne) SetTextPages(v int) *ParseJobUpdateOne {
	_u.mutation.ResetTextPages()
	_u.mutation.SetTextPages(v)
	return _u
}

// SetNillableTextPages sets the "text_pages" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableTextPages(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetTextPages(*v)
	}
	return _u
}

// AddTextPages adds value to the "text_pages" field.
func (_u *ParseJobUpdateOne) AddTextPages(v int) *ParseJobUpdateOne {
	_u.mutation.AddTextPages(v)
	return _u
}

// ClearTextPages clears the value of the "text_pages" field.
func (_u *ParseJobUpdateOne) ClearTextPages() *ParseJobUpdateOne {
	_u.mutation.ClearTextPages()
	return _u
}

// SetImagePages sets the "image_pages" field.
func (_u *ParseJobUpdateOne) SetImagePages(v int) *ParseJobUpdateOne {
	_u.mutation.ResetImagePages()
	_u.mutation.SetImagePages(v)
	return _u
}

// SetNillableImagePages sets the "image_pages" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableImagePages(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetImagePages(*v)
	}
	return _u
}

// AddImagePages adds value to the "image_pages" field.
func (_u *ParseJobUpdateOne) AddImagePages(v int) *ParseJobUpdateOne {
	_u.mutation.AddImagePages(v)
	return _u
}

// ClearImagePages clears the value of the "image_pages" field.
func (_u *ParseJobUpdateOne) ClearImagePages() *ParseJobUpdateOne {
	_u.mutation.ClearImagePages()
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *ParseJobUpdateOne) SetArtifactPath(v string) *ParseJobUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableArtifactPath(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *ParseJobUpdateOne) ClearArtifactPath() *ParseJobUpdateOne {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ParseJobUpdateOne) SetOcrText(v string) *ParseJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableOcrText(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ParseJobUpdateOne) ClearOcrText() *ParseJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ParseJobUpdateOne) SetOcrConfidence(v float32) *ParseJobUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableOcrConfidence(v *float32) *ParseJobUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ParseJobUpdateOne) AddOcrConfidence(v float32) *ParseJobUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ParseJobUpdateOne) ClearOcrConfidence() *ParseJobUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) SetFile(v *DocumentFile) *ParseJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ParseJobUpdateOne) SetProfile(v *Profile) *ParseJobUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ParseJobUpdateOne) SetDocument(v *Document) *ParseJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdateOne) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) ClearFile() *ParseJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ParseJobUpdateOne) ClearProfile() *ParseJobUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ParseJobUpdateOne) ClearDocument() *ParseJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdateOne) Where(ps ...predicate.ParseJob) *ParseJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseJobUpdateOne) Select(field string, fields ...string) *ParseJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseJob entity.
func (_u *ParseJobUpdateOne) Save(ctx context.Context) (*ParseJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdateOne) SaveX(ctx context.Context) *ParseJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parsejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := parsejob.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ParseJob.label": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.profile"`)
	}
	return nil
}

func (_u *ParseJobUpdateOne) sqlSave(ctx context.Context) (_node *ParseJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsejob.FieldID)
		for _, f := range fields {
			if !parsejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(parsejob.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(parsejob.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(parsejob.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(parsejob.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.SampledPages(); ok {
		_spec.SetField(parsejob.FieldSampledPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSampledPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldSampledPages, value)
		})
	}
	if _u.mutation.SampledPagesCleared() {
		_spec.ClearField(parsejob.FieldSampledPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.TextPages(); ok {
		_spec.SetField(parsejob.FieldTextPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextPages(); ok {
		_spec.AddField(parsejob.FieldTextPages, field.TypeInt, value)
	}
	if _u.mutation.TextPagesCleared() {
		_spec.ClearField(parsejob.FieldTextPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ImagePages(); ok {
		_spec.SetField(parsejob.FieldImagePages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagePages(); ok {
		_spec.AddField(parsejob.FieldImagePages, field.TypeInt, value)
	}
	if _u.mutation.ImagePagesCleared() {
		_spec.ClearField(parsejob.FieldImagePages, field.TypeInt)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(parsejob.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(parsejob.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(parsejob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(parsejob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(parsejob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(parsejob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(parsejob.FieldOcrConfidence, field.TypeFloat32)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProfileTable,
			Columns: []string{parsejob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.ProfileTable,
			Columns: []string{parsejob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.DocumentTable,
			Columns: []string{parsejob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.DocumentTable,
			Columns: []string{parsejob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
