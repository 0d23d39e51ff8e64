package repository

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	entfile "github.com/joseph-ayodele/doc-ingestor/gen/ent/documentfile"
)

type DocumentFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.DocumentFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*ent.DocumentFile, error)
}

type documentFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentFileRepository(entc *ent.Client, logger *slog.Logger) DocumentFileRepository {
	return &documentFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.DocumentFile, error) {
	return r.ent.DocumentFile.Get(ctx, id)
}

func (r *documentFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.DocumentFile, error) {
	return r.ent.DocumentFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
}

func (r *documentFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filepath.Base(sourcePath)).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document file", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the same content was already
// ingested for this profile, otherwise creates a new one. The bool reports
// deduplication.
func (r *documentFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, hash []byte, uploadedAt time.Time) (*ent.DocumentFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}

	size := 0
	if fi, err := os.Stat(sourcePath); err == nil {
		size = int(fi.Size())
	}
	row, err := r.Create(ctx, profileID, sourcePath, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert document file by hash", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentFileRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*ent.DocumentFile, error) {
	rows, err := r.ent.DocumentFile.Query().
		Where(entfile.ProfileID(profileID)).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list document files", "profile_id", profileID, "error", err)
		return nil, err
	}
	return rows, nil
}
