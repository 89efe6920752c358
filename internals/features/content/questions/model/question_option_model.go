// file: internals/features/content/questions/model/question_option_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options are replaced wholesale on every question update (full-object PUT),
// so they carry no timestamps of their own.
type QuestionOptionModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	QuestionID uuid.UUID `gorm:"column:question_id;type:uuid;not null;index" json:"-"`
	OptionKey  string    `gorm:"column:option_key;type:varchar(4);not null" json:"option_key"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
}

func (QuestionOptionModel) TableName() string { return "question_options" }

func (m *QuestionOptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
