// Package documents exposes read paths over classified documents for the
// gRPC surface.
package documents

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/entity"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
	"github.com/joseph-ayodele/doc-ingestor/internal/utils"
)

// Service handles document query logic.
type Service struct {
	docsRepo repository.DocumentRepository
	jobsRepo repository.ParseJobRepository
	logger   *slog.Logger
}

func NewService(docs repository.DocumentRepository, jobs repository.ParseJobRepository, logger *slog.Logger) *Service {
	return &Service{
		docsRepo: docs,
		jobsRepo: jobs,
		logger:   logger,
	}
}

// GetDocument returns the classified document for a source file.
func (s *Service) GetDocument(ctx context.Context, fileID string) (*entity.Document, error) {
	id, err := uuid.Parse(strings.TrimSpace(fileID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "file_id must be a UUID")
	}
	doc, err := s.docsRepo.GetByFileID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Errorf(codes.NotFound, "no document for file %s", id)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get document: %v", err)
	}
	return doc, nil
}

// GetJob returns a single parse job by ID.
func (s *Service) GetJob(ctx context.Context, jobID string) (*entity.ParseJob, error) {
	id, err := uuid.Parse(strings.TrimSpace(jobID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	row, err := s.jobsRepo.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, status.Errorf(codes.NotFound, "job %s not found", id)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get job: %v", err)
	}
	return utils.ToParseJob(row), nil
}

// ListDocumentsRequest represents document listing parameters.
type ListDocumentsRequest struct {
	ProfileID string
	Label     string // optional; TEXT_DOMINANT or IMAGE_DOMINANT
}

// ListDocuments returns classified documents for a profile, optionally
// filtered by content label.
func (s *Service) ListDocuments(ctx context.Context, req ListDocumentsRequest) ([]*entity.Document, error) {
	profileID, err := parseProfileID(req.ProfileID)
	if err != nil {
		s.logger.Error("invalid profile_id for list documents", "profile_id", req.ProfileID, "error", err)
		return nil, err
	}

	var label *constants.ContentLabel
	if l := strings.TrimSpace(req.Label); l != "" {
		cl := constants.ContentLabel(l)
		if cl != constants.TextDominant && cl != constants.ImageDominant {
			return nil, status.Errorf(codes.InvalidArgument, "unknown label %q", l)
		}
		label = &cl
	}

	docs, err := s.docsRepo.ListDocuments(ctx, profileID, label)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	s.logger.Info("documents listed successfully", "profile_id", profileID, "count", len(docs))
	return docs, nil
}

// ListJobsRequest represents job listing parameters.
type ListJobsRequest struct {
	ProfileID string
	Status    string // optional
}

// ListJobs returns parse jobs for a profile, optionally filtered by status.
func (s *Service) ListJobs(ctx context.Context, req ListJobsRequest) ([]*entity.ParseJob, error) {
	profileID, err := parseProfileID(req.ProfileID)
	if err != nil {
		s.logger.Error("invalid profile_id for list jobs", "profile_id", req.ProfileID, "error", err)
		return nil, err
	}

	var statusFilter *string
	if st := strings.TrimSpace(req.Status); st != "" {
		valid := false
		for _, known := range constants.JobStatuses {
			if st == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		statusFilter = &st
	}

	rows, err := s.jobsRepo.ListByProfile(ctx, profileID, statusFilter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*entity.ParseJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToParseJob(row))
	}
	return out, nil
}

func parseProfileID(raw string) (uuid.UUID, error) {
	v := common.NewValidator().Field("profile_id", raw, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	return id, nil
}
