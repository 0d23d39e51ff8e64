package utils

import (
	"encoding/json"
	"time"

	"github.com/joseph-ayodele/doc-ingestor/gen/ent"
	docingestpb "github.com/joseph-ayodele/doc-ingestor/gen/proto/docingest/v1"
	"github.com/joseph-ayodele/doc-ingestor/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBDocument(d *entity.Document) *docingestpb.Document {
	return &docingestpb.Document{
		Id:           d.ID.String(),
		ProfileId:    d.ProfileID.String(),
		FileId:       d.FileID.String(),
		Filename:     d.Filename,
		Format:       d.Format,
		Label:        d.Label,
		PageCount:    int32(d.PageCount),
		ArtifactPath: d.ArtifactPath,
		OcrText:      strOrEmpty(d.OCRText),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBProfileFromEntity(p *entity.Profile) *docingestpb.Profile {
	return &docingestpb.Profile{
		Id:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBParseJob(j *entity.ParseJob) *docingestpb.ParseJob {
	out := &docingestpb.ParseJob{
		Id:        j.ID.String(),
		FileId:    j.FileID.String(),
		ProfileId: j.ProfileID.String(),
		Format:    j.Format,
		StartedAt: j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.DocumentID != nil {
		out.DocumentId = j.DocumentID.String()
	}
	if j.Status != nil {
		out.Status = *j.Status
	}
	if j.Label != nil {
		out.Label = *j.Label
	}
	if j.PageCount != nil {
		out.PageCount = int32(*j.PageCount)
	}
	if j.SampledPages != nil {
		var pages []int32
		if err := json.Unmarshal(j.SampledPages, &pages); err == nil {
			out.SampledPages = pages
		}
	}
	if j.TextPages != nil {
		out.TextPages = int32(*j.TextPages)
	}
	if j.ImagePages != nil {
		out.ImagePages = int32(*j.ImagePages)
	}
	if j.ArtifactPath != nil {
		out.ArtifactPath = *j.ArtifactPath
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.OCRConfidence != nil {
		out.OcrConfidence = *j.OCRConfidence
	}
	if j.OCRText != nil {
		out.OcrText = *j.OCRText
	}
	return out
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:           e.ID,
		ProfileID:    e.ProfileID,
		FileID:       e.FileID,
		Filename:     e.Filename,
		Format:       e.Format,
		Label:        e.Label,
		PageCount:    e.PageCount,
		ArtifactPath: e.ArtifactPath,
		OCRText:      e.OcrText,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToParseJob(e *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:            e.ID,
		FileID:        e.FileID,
		ProfileID:     e.ProfileID,
		DocumentID:    e.DocumentID,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		Label:         e.Label,
		PageCount:     e.PageCount,
		SampledPages:  e.SampledPages,
		TextPages:     e.TextPages,
		ImagePages:    e.ImagePages,
		ArtifactPath:  e.ArtifactPath,
		OCRText:       e.OcrText,
		OCRConfidence: e.OcrConfidence,
	}
}
