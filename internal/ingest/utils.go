package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/internal/repository"
)

// AllowedExt checks if a file extension maps to a supported document format.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ValidateProfile ensures the profile exists before attaching files to it.
func ValidateProfile(ctx context.Context, repo repository.ProfileRepository, profileID uuid.UUID) error {
	exists, err := repo.Exists(ctx, profileID)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return fmt.Errorf("profile %s not found", profileID)
	}
	return nil
}
