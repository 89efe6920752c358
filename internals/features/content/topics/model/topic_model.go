// file: internals/features/content/topics/model/topic_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ChapterID   uuid.UUID `gorm:"column:chapter_id;type:uuid;not null;index" json:"chapter_id"`
	Name        string    `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TopicModel) TableName() string { return "topics" }

func (m *TopicModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
