package server

import (
	"context"
	"log/slog"

	docingestpb "github.com/joseph-ayodele/doc-ingestor/gen/proto/docingest/v1"
	"github.com/joseph-ayodele/doc-ingestor/internal/profiles"
	"github.com/joseph-ayodele/doc-ingestor/internal/utils"
)

type ProfileServer struct {
	docingestpb.UnimplementedProfilesServiceServer
	svc    *profiles.Service
	logger *slog.Logger
}

func NewProfileServer(svc *profiles.Service, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *docingestpb.CreateProfileRequest) (*docingestpb.CreateProfileResponse, error) {
	serviceReq := profiles.CreateProfileRequest{
		Name:        req.GetName(),
		Description: req.GetDescription(),
	}

	p, err := s.svc.CreateProfile(ctx, serviceReq)
	if err != nil {
		return nil, err
	}

	return &docingestpb.CreateProfileResponse{
		Profile: utils.ToPBProfileFromEntity(p),
	}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *docingestpb.ListProfilesRequest) (*docingestpb.ListProfilesResponse, error) {
	plist, err := s.svc.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*docingestpb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfileFromEntity(p))
	}
	return &docingestpb.ListProfilesResponse{Profiles: out}, nil
}
