package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a classified document for data transfer between layers.
type Document struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	FileID       uuid.UUID `json:"file_id"`
	Filename     string    `json:"filename"`
	Format       string    `json:"format"`
	Label        string    `json:"label"`
	PageCount    int       `json:"page_count"`
	ArtifactPath string    `json:"artifact_path"`
	OCRText      *string   `json:"ocr_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
