package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	entdoc "github.com/joseph-ayodele/doc-ingestor/gen/ent/document"
	"github.com/joseph-ayodele/doc-ingestor/internal/entity"
	"github.com/joseph-ayodele/doc-ingestor/internal/utils"
)

// CreateDocumentRequest wraps everything needed to record a classified document.
type CreateDocumentRequest struct {
	File         *ent.DocumentFile
	Format       constants.Format
	Label        constants.ContentLabel
	PageCount    int
	ArtifactPath string
}

type DocumentRepository interface {
	ListDocuments(ctx context.Context, profileID uuid.UUID, label *constants.ContentLabel) ([]*entity.Document, error)
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.Document, error)
	UpsertFromArtifact(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error)
	SetOCRText(ctx context.Context, documentID uuid.UUID, text string) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) ListDocuments(ctx context.Context, profileID uuid.UUID, label *constants.ContentLabel) ([]*entity.Document, error) {
	q := r.client.Document.Query().Where(entdoc.ProfileID(profileID))
	if label != nil {
		q = q.Where(entdoc.LabelEQ(string(*label)))
	}
	rows, err := q.Order(entdoc.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}

func (r *documentRepository) GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Query().Where(entdoc.FileID(fileID)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

// UpsertFromArtifact records the classification outcome for a file. Reruns of
// the same file update the existing row instead of duplicating it.
func (r *documentRepository) UpsertFromArtifact(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error) {
	file := request.File

	existing, err := r.client.Document.Query().Where(entdoc.FileID(file.ID)).Only(ctx)
	switch {
	case err == nil:
		row, uerr := existing.Update().
			SetFormat(string(request.Format)).
			SetLabel(string(request.Label)).
			SetPageCount(request.PageCount).
			SetArtifactPath(request.ArtifactPath).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("failed to update document", "file_id", file.ID, "error", uerr)
			return nil, uerr
		}
		return utils.ToDocument(row), nil
	case !ent.IsNotFound(err):
		return nil, err
	}

	row, err := r.client.Document.Create().
		SetProfileID(file.ProfileID).
		SetFileID(file.ID).
		SetFilename(file.Filename).
		SetFormat(string(request.Format)).
		SetLabel(string(request.Label)).
		SetPageCount(request.PageCount).
		SetArtifactPath(request.ArtifactPath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "file_id", file.ID, "error", err)
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) SetOCRText(ctx context.Context, documentID uuid.UUID, text string) error {
	_, err := r.client.Document.
		UpdateOneID(documentID).
		SetOcrText(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set document ocr text", "document_id", documentID, "error", err)
	}
	return err
}
