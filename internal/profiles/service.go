package profiles

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/doc-ingestor/internal/common"
	"github.com/joseph-ayodele/doc-ingestor/internal/entity"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
	"github.com/joseph-ayodele/doc-ingestor/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service handles profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewService creates a new profile service.
func NewService(profileRepo repository.ProfileRepository, logger *slog.Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation parameters.
type CreateProfileRequest struct {
	Name        string
	Description string
}

// CreateProfile creates a new profile, returning the existing one when the
// name is already taken.
func (s *Service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*entity.Profile, error) {
	name := strings.TrimSpace(req.Name)
	v := common.NewValidator().
		Field("name", name, common.Required, maxLen(128)).
		Field("description", req.Description, maxLen(1024))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	if existing, err := s.profileRepo.GetByName(ctx, name); err == nil {
		return utils.ToProfile(existing), nil
	}

	p, err := s.profileRepo.CreateProfile(ctx, &repository.Profile{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}

	s.logger.Info("profile created successfully", "profile_id", p.ID, "name", p.Name)
	return utils.ToProfile(p), nil
}

func maxLen(n int) common.ValidationRule {
	return func(field string, value interface{}) *common.ValidationError {
		return common.MaxLength(field, value, n)
	}
}

// ListProfiles returns all profiles.
func (s *Service) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	plist, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		// DB error already logged in repository layer
		return nil, status.Errorf(codes.Internal, "list profiles: %v", err)
	}

	out := make([]*entity.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToProfile(p))
	}
	s.logger.Info("profiles listed successfully", "count", len(out))
	return out, nil
}
