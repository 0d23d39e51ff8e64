package server

import (
	"context"
	"log/slog"

	docingestpb "github.com/joseph-ayodele/doc-ingestor/gen/proto/docingest/v1"
	"github.com/joseph-ayodele/doc-ingestor/internal/documents"
	"github.com/joseph-ayodele/doc-ingestor/internal/utils"
)

type DocumentsServer struct {
	docingestpb.UnimplementedDocumentsServiceServer
	svc    *documents.Service
	logger *slog.Logger
}

func NewDocumentsServer(svc *documents.Service, logger *slog.Logger) *DocumentsServer {
	return &DocumentsServer{
		svc:    svc,
		logger: logger,
	}
}

func (s *DocumentsServer) GetDocument(ctx context.Context, req *docingestpb.GetDocumentRequest) (*docingestpb.GetDocumentResponse, error) {
	doc, err := s.svc.GetDocument(ctx, req.GetFileId())
	if err != nil {
		return nil, err
	}
	return &docingestpb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsServer) GetJob(ctx context.Context, req *docingestpb.GetJobRequest) (*docingestpb.GetJobResponse, error) {
	job, err := s.svc.GetJob(ctx, req.GetJobId())
	if err != nil {
		return nil, err
	}
	return &docingestpb.GetJobResponse{Job: utils.ToPBParseJob(job)}, nil
}

func (s *DocumentsServer) ListDocuments(ctx context.Context, req *docingestpb.ListDocumentsRequest) (*docingestpb.ListDocumentsResponse, error) {
	docs, err := s.svc.ListDocuments(ctx, documents.ListDocumentsRequest{
		ProfileID: req.GetProfileId(),
		Label:     req.GetLabel(),
	})
	if err != nil {
		return nil, err
	}

	out := make([]*docingestpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &docingestpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsServer) ListJobs(ctx context.Context, req *docingestpb.ListJobsRequest) (*docingestpb.ListJobsResponse, error) {
	jobs, err := s.svc.ListJobs(ctx, documents.ListJobsRequest{
		ProfileID: req.GetProfileId(),
		Status:    req.GetStatus(),
	})
	if err != nil {
		return nil, err
	}

	out := make([]*docingestpb.ParseJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBParseJob(j))
	}
	return &docingestpb.ListJobsResponse{Jobs: out}, nil
}
