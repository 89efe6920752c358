// file: internals/features/content/questions/model/question_model.go
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusApproved QuestionStatus = "approved"
	QuestionStatusRejected QuestionStatus = "rejected"
)

func ValidQuestionStatus(s string) bool {
	switch QuestionStatus(strings.ToLower(strings.TrimSpace(s))) {
	case QuestionStatusPending, QuestionStatusApproved, QuestionStatusRejected:
		return true
	}
	return false
}

// A question always carries subject_id + chapter_id. topic_id null means the
// question hangs directly under its chapter ("direct question"). When topic_id
// is set, the topic must belong to the same chapter (checked in the
// controller transaction).
type QuestionModel struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID uuid.UUID  `gorm:"column:subject_id;type:uuid;not null;index" json:"subject_id"`
	ChapterID uuid.UUID  `gorm:"column:chapter_id;type:uuid;not null;index" json:"chapter_id"`
	TopicID   *uuid.UUID `gorm:"column:topic_id;type:uuid;index" json:"topic_id,omitempty"`

	QuestionText string  `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Explanation  *string `gorm:"column:explanation;type:text" json:"explanation,omitempty"`
	ImageURL     *string `gorm:"column:image_url;type:text" json:"image_url,omitempty"`

	Status     QuestionStatus `gorm:"column:status;type:varchar(10);not null;default:pending" json:"status"`
	CorrectKey *string        `gorm:"column:correct_key;type:varchar(4)" json:"correct_key,omitempty"`

	FemaleExplanationAudioURL *string `gorm:"column:female_explanation_audio_url;type:text" json:"female_explanation_audio_url,omitempty"`
	MaleExplanationAudioURL   *string `gorm:"column:male_explanation_audio_url;type:text" json:"male_explanation_audio_url,omitempty"`

	Options []QuestionOptionModel `gorm:"foreignKey:QuestionID;references:ID" json:"question_options,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

var optionKeyRe = regexp.MustCompile(`^[a-z]$`)

// ValidateShape mirrors the store-level CHECK constraints so bad payloads fail
// before any write: >= 2 non-empty options, lowercase single-letter keys, no
// duplicate keys, correct_key (if set) naming one of the options.
func (m *QuestionModel) ValidateShape() error {
	if strings.TrimSpace(m.QuestionText) == "" {
		return errors.New("question_text is required")
	}

	nonEmpty := 0
	seen := map[string]struct{}{}
	for _, op := range m.Options {
		key := strings.ToLower(strings.TrimSpace(op.OptionKey))
		if !optionKeyRe.MatchString(key) {
			return errors.New("option_key must be a single letter a..z")
		}
		if _, dup := seen[key]; dup {
			return errors.New("duplicate option_key: " + key)
		}
		seen[key] = struct{}{}
		if strings.TrimSpace(op.Content) != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return errors.New("at least 2 non-empty options are required")
	}

	if m.CorrectKey != nil {
		key := strings.ToLower(strings.TrimSpace(*m.CorrectKey))
		if key != "" {
			if _, ok := seen[key]; !ok {
				return errors.New("correct_key does not match any option_key")
			}
		}
	}

	if !ValidQuestionStatus(string(m.Status)) {
		return errors.New("status must be pending, approved or rejected")
	}
	return nil
}
