// file: internals/features/content/questions/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	questionModel "medlearn_backend/internals/features/content/questions/model"
)

/* =========================================================
   CREATE / UPDATE
   The admin form submits the full object on both paths and
   always resets status to "pending" (re-review after every
   edit; current product behavior, kept deliberately).
========================================================= */

type QuestionOptionPayload struct {
	OptionKey string `json:"option_key" validate:"required,len=1"`
	Content   string `json:"content"`
}

type SaveQuestionRequest struct {
	SubjectID    uuid.UUID               `json:"subject_id" validate:"required"`
	ChapterID    uuid.UUID               `json:"chapter_id" validate:"required"`
	TopicID      *uuid.UUID              `json:"topic_id" validate:"omitempty"`
	QuestionText string                  `json:"question_text" validate:"required"`
	Explanation  *string                 `json:"explanation" validate:"omitempty"`
	ImageURL     *string                 `json:"image_url" validate:"omitempty"`
	Options      []QuestionOptionPayload `json:"options" validate:"required,min=2,dive"`
	CorrectKey   *string                 `json:"correct_key" validate:"omitempty"`
}

func (r *SaveQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.Explanation = trimPtr(r.Explanation)
	r.ImageURL = trimPtr(r.ImageURL)
	if r.CorrectKey != nil {
		k := strings.ToLower(strings.TrimSpace(*r.CorrectKey))
		if k == "" {
			r.CorrectKey = nil
		} else {
			r.CorrectKey = &k
		}
	}
	for i := range r.Options {
		r.Options[i].OptionKey = strings.ToLower(strings.TrimSpace(r.Options[i].OptionKey))
		r.Options[i].Content = strings.TrimSpace(r.Options[i].Content)
	}
}

// ToModel builds the model with status forced to pending and validates its
// shape. Empty options are dropped here; ValidateShape still requires >= 2
// non-empty ones.
func (r *SaveQuestionRequest) ToModel() (*questionModel.QuestionModel, error) {
	opts := make([]questionModel.QuestionOptionModel, 0, len(r.Options))
	for _, op := range r.Options {
		if op.Content == "" {
			continue
		}
		opts = append(opts, questionModel.QuestionOptionModel{
			OptionKey: op.OptionKey,
			Content:   op.Content,
		})
	}

	m := &questionModel.QuestionModel{
		SubjectID:    r.SubjectID,
		ChapterID:    r.ChapterID,
		TopicID:      r.TopicID,
		QuestionText: r.QuestionText,
		Explanation:  r.Explanation,
		ImageURL:     r.ImageURL,
		Status:       questionModel.QuestionStatusPending,
		CorrectKey:   r.CorrectKey,
		Options:      opts,
	}
	if err := m.ValidateShape(); err != nil {
		return nil, err
	}
	return m, nil
}

/* =========================================================
   STATUS (PUT /api/admin/questions/:id/status)
========================================================= */

type UpdateQuestionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

/* =========================================================
   LIST QUERY
========================================================= */

type ListQuestionsQuery struct {
	SubjectID *uuid.UUID `query:"subject_id" validate:"omitempty"`
	ChapterID *uuid.UUID `query:"chapter_id" validate:"omitempty"`
	TopicID   *uuid.UUID `query:"topic_id" validate:"omitempty"`
	Status    string     `query:"status" validate:"omitempty,oneof=pending approved rejected"`
	Q         string     `query:"q" validate:"omitempty,max=200"`
}

/* =========================================================
   RESPONSE
========================================================= */

type QuestionResponse struct {
	ID           uuid.UUID                    `json:"id"`
	SubjectID    uuid.UUID                    `json:"subject_id"`
	ChapterID    uuid.UUID                    `json:"chapter_id"`
	TopicID      *uuid.UUID                   `json:"topic_id,omitempty"`
	QuestionText string                       `json:"question_text"`
	Explanation  *string                      `json:"explanation,omitempty"`
	ImageURL     *string                      `json:"image_url,omitempty"`
	Status       questionModel.QuestionStatus `json:"status"`
	CorrectKey   *string                      `json:"correct_key,omitempty"`
	FemaleAudio  *string                      `json:"female_explanation_audio_url,omitempty"`
	MaleAudio    *string                      `json:"male_explanation_audio_url,omitempty"`
	Options      []QuestionOptionPayload      `json:"question_options"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

func FromQuestionModel(m questionModel.QuestionModel) QuestionResponse {
	opts := make([]QuestionOptionPayload, 0, len(m.Options))
	for _, op := range m.Options {
		opts = append(opts, QuestionOptionPayload{
			OptionKey: op.OptionKey,
			Content:   op.Content,
		})
	}
	return QuestionResponse{
		ID:           m.ID,
		SubjectID:    m.SubjectID,
		ChapterID:    m.ChapterID,
		TopicID:      m.TopicID,
		QuestionText: m.QuestionText,
		Explanation:  m.Explanation,
		ImageURL:     m.ImageURL,
		Status:       m.Status,
		CorrectKey:   m.CorrectKey,
		FemaleAudio:  m.FemaleExplanationAudioURL,
		MaleAudio:    m.MaleExplanationAudioURL,
		Options:      opts,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromQuestionModels(arr []questionModel.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromQuestionModel(m))
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
