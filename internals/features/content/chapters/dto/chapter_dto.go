// file: internals/features/content/chapters/dto/chapter_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	chapterModel "medlearn_backend/internals/features/content/chapters/model"
)

type CreateChapterRequest struct {
	SubjectID   uuid.UUID `json:"subject_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=160"`
	Description *string   `json:"description" validate:"omitempty"`
}

func (r *CreateChapterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *CreateChapterRequest) ToModel() chapterModel.ChapterModel {
	return chapterModel.ChapterModel{
		SubjectID:   r.SubjectID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateChapterRequest struct {
	Name        string  `json:"name" validate:"required,max=160"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *UpdateChapterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateChapterRequest) Apply(m *chapterModel.ChapterModel) {
	m.Name = r.Name
	m.Description = r.Description
}

type ChapterResponse struct {
	ID          uuid.UUID `json:"id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromChapterModel(m chapterModel.ChapterModel) ChapterResponse {
	return ChapterResponse{
		ID:          m.ID,
		SubjectID:   m.SubjectID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromChapterModels(arr []chapterModel.ChapterModel) []ChapterResponse {
	out := make([]ChapterResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromChapterModel(m))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
