package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents a processing job for data transfer between layers.
type ParseJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	ProfileID     uuid.UUID       `json:"profile_id"`
	DocumentID    *uuid.UUID      `json:"document_id,omitempty"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	Label         *string         `json:"label,omitempty"`
	PageCount     *int            `json:"page_count,omitempty"`
	SampledPages  json.RawMessage `json:"sampled_pages,omitempty"`
	TextPages     *int            `json:"text_pages,omitempty"`
	ImagePages    *int            `json:"image_pages,omitempty"`
	ArtifactPath  *string         `json:"artifact_path,omitempty"`
	OCRText       *string         `json:"ocr_text,omitempty"`
	OCRConfidence *float32        `json:"ocr_confidence,omitempty"`
}
