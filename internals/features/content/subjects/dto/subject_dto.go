// file: internals/features/content/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	subjectModel "medlearn_backend/internals/features/content/subjects/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CreateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,max=160"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *CreateSubjectRequest) ToModel() subjectModel.SubjectModel {
	return subjectModel.SubjectModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

// Full-object replace of the mutable fields (PUT semantics).
type UpdateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,max=160"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *UpdateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *UpdateSubjectRequest) Apply(m *subjectModel.SubjectModel) {
	m.Name = r.Name
	m.Description = r.Description
}

/* =========================================================
   RESPONSE
========================================================= */

type SubjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSubjectModel(m subjectModel.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromSubjectModels(arr []subjectModel.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromSubjectModel(m))
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
