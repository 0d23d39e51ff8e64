package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	entjob "github.com/joseph-ayodele/doc-ingestor/gen/ent/parsejob"
)

// ClassifyAudit records what the classifier looked at for one job.
type ClassifyAudit struct {
	Label        constants.ContentLabel
	PageCount    int
	SampledPages []int
	TextPages    int
	ImagePages   int
}

type ParseJobRepository interface {
	Start(ctx context.Context, fileID, profileID uuid.UUID, format constants.Format) (*ent.ParseJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error)
	MarkClassified(ctx context.Context, jobID uuid.UUID, audit ClassifyAudit) error
	FinishExtract(ctx context.Context, jobID uuid.UUID, artifactPath string, documentID uuid.UUID) error
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, confidence float32) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, status *string) ([]*ent.ParseJob, error)
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) Start(ctx context.Context, fileID, profileID uuid.UUID, format constants.Format) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(string(format)).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *parseJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error) {
	return r.ent.ParseJob.Get(ctx, jobID)
}

func (r *parseJobRepo) MarkClassified(ctx context.Context, jobID uuid.UUID, audit ClassifyAudit) error {
	sampled, err := json.Marshal(audit.SampledPages)
	if err != nil {
		return err
	}
	_, err = r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusClassified)).
		SetLabel(string(audit.Label)).
		SetPageCount(audit.PageCount).
		SetSampledPages(sampled).
		SetTextPages(audit.TextPages).
		SetImagePages(audit.ImagePages).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job classify update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job classified", "job_id", jobID, "label", audit.Label,
		"text_pages", audit.TextPages, "image_pages", audit.ImagePages)
	return nil
}

func (r *parseJobRepo) FinishExtract(ctx context.Context, jobID uuid.UUID, artifactPath string, documentID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusExtractOK)).
		SetArtifactPath(artifactPath).
		SetDocumentID(documentID).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (EXTRACT_OK)", "job_id", jobID, "artifact_path", artifactPath)
	return nil
}

func (r *parseJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, confidence float32) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOCROK)).
		SetOcrText(ocrText).
		SetOcrConfidence(confidence).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (OCR_OK)", "job_id", jobID, "confidence", confidence)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, status *string) ([]*ent.ParseJob, error) {
	q := r.ent.ParseJob.Query().Where(entjob.ProfileID(profileID))
	if status != nil {
		q = q.Where(entjob.Status(*status))
	}
	rows, err := q.Order(entjob.ByStartedAt()).All(ctx)
	if err != nil {
		r.log.Error("failed to list parse jobs", "profile_id", profileID, "err", err)
		return nil, err
	}
	return rows, nil
}
