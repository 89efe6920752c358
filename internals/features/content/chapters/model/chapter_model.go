// file: internals/features/content/chapters/model/chapter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A chapter belongs to exactly one subject. It may own topics and, next to
// them, "direct" questions (questions with a null topic_id).
type ChapterModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;not null;index" json:"subject_id"`
	Name        string    `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ChapterModel) TableName() string { return "chapters" }

func (m *ChapterModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
