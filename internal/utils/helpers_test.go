package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/doc-ingestor/internal/entity"
)

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func f32Ptr(f float32) *float32 { return &f }

func TestToPBParseJob(t *testing.T) {
	docID := uuid.New()
	finished := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	j := &entity.ParseJob{
		ID:            uuid.New(),
		FileID:        uuid.New(),
		ProfileID:     uuid.New(),
		DocumentID:    &docID,
		Format:        "PDF",
		StartedAt:     finished.Add(-time.Minute),
		FinishedAt:    &finished,
		Status:        strPtr("OCR_OK"),
		Label:         strPtr("IMAGE_DOMINANT"),
		PageCount:     intPtr(4),
		SampledPages:  []byte("[0,2,3]"),
		TextPages:     intPtr(0),
		ImagePages:    intPtr(3),
		ArtifactPath:  strPtr("/out/scan"),
		OCRText:       strPtr("recovered text"),
		OCRConfidence: f32Ptr(0.92),
	}

	pb := ToPBParseJob(j)
	assert.Equal(t, j.ID.String(), pb.Id)
	assert.Equal(t, docID.String(), pb.DocumentId)
	assert.Equal(t, "OCR_OK", pb.Status)
	assert.Equal(t, "IMAGE_DOMINANT", pb.Label)
	assert.Equal(t, int32(4), pb.PageCount)
	assert.Equal(t, []int32{0, 2, 3}, pb.SampledPages)
	assert.Equal(t, "/out/scan", pb.ArtifactPath)
	assert.Equal(t, "recovered text", pb.OcrText)
	assert.InDelta(t, 0.92, pb.OcrConfidence, 0.001)
	assert.Equal(t, "2026-08-01T12:00:00Z", pb.FinishedAt)
}

func TestToPBParseJobOptionalFieldsEmpty(t *testing.T) {
	j := &entity.ParseJob{
		ID:        uuid.New(),
		FileID:    uuid.New(),
		ProfileID: uuid.New(),
		Format:    "EPUB",
		StartedAt: time.Now(),
	}

	pb := ToPBParseJob(j)
	require.NotNil(t, pb)
	assert.Empty(t, pb.DocumentId)
	assert.Empty(t, pb.Status)
	assert.Empty(t, pb.OcrText)
	assert.Zero(t, pb.OcrConfidence)
	assert.Empty(t, pb.FinishedAt)
}

func TestToPBDocument(t *testing.T) {
	d := &entity.Document{
		ID:           uuid.New(),
		ProfileID:    uuid.New(),
		FileID:       uuid.New(),
		Filename:     "scan.pdf",
		Format:       "PDF",
		Label:        "IMAGE_DOMINANT",
		PageCount:    2,
		ArtifactPath: "/out/scan",
		OCRText:      strPtr("hello"),
	}

	pb := ToPBDocument(d)
	assert.Equal(t, "scan.pdf", pb.Filename)
	assert.Equal(t, "IMAGE_DOMINANT", pb.Label)
	assert.Equal(t, int32(2), pb.PageCount)
	assert.Equal(t, "hello", pb.OcrText)
}
