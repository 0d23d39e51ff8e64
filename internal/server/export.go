package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	v1 "github.com/joseph-ayodele/doc-ingestor/gen/proto/docingest/v1"
	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	var label *constants.ContentLabel
	if l := strings.TrimSpace(req.GetLabel()); l != "" {
		cl := constants.ContentLabel(l)
		if cl != constants.TextDominant && cl != constants.ImageDominant {
			return nil, common.InvalidArgumentErrorf("unknown label %q", l)
		}
		label = &cl
	}

	xlsx, err := s.svc.ExportDocumentsXLSX(ctx, profileID, label)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", pid, "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &v1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
