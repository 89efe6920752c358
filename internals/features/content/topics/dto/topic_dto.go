// file: internals/features/content/topics/dto/topic_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	topicModel "medlearn_backend/internals/features/content/topics/model"
)

type CreateTopicRequest struct {
	ChapterID   uuid.UUID `json:"chapter_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=160"`
	Description *string   `json:"description" validate:"omitempty"`
}

func (r *CreateTopicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *CreateTopicRequest) ToModel() topicModel.TopicModel {
	return topicModel.TopicModel{
		ChapterID:   r.ChapterID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateTopicRequest struct {
	Name        string  `json:"name" validate:"required,max=160"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *UpdateTopicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateTopicRequest) Apply(m *topicModel.TopicModel) {
	m.Name = r.Name
	m.Description = r.Description
}

type TopicResponse struct {
	ID          uuid.UUID `json:"id"`
	ChapterID   uuid.UUID `json:"chapter_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTopicModel(m topicModel.TopicModel) TopicResponse {
	return TopicResponse{
		ID:          m.ID,
		ChapterID:   m.ChapterID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromTopicModels(arr []topicModel.TopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromTopicModel(m))
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
