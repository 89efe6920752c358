// file: internals/features/doctors/doctor/model/doctor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorModel is the reviewer/content-author profile. The login account
// itself lives in users with role "doctor"; UserID links the two.
type DoctorModel struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;unique" json:"user_id,omitempty"`

	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Specialization string `gorm:"type:varchar(120)" json:"specialization"`
	Bio            string `gorm:"type:text" json:"bio"`
	Email          string `gorm:"type:varchar(255)" json:"email"`
	PhotoURL       string `gorm:"type:text" json:"photo_url"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DoctorModel) TableName() string {
	return "doctors"
}

func (m *DoctorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
