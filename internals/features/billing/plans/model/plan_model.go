// file: internals/features/billing/plans/model/plan_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subscription plan. access_features is a JSONB map of feature name -> enabled
// so the dashboard can toggle features without a schema change.
type PlanModel struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string         `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Description    *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	Price          float64        `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	DurationDays   int            `gorm:"column:duration_days;not null" json:"duration_days"`
	DeviceLimit    int            `gorm:"column:device_limit;not null;default:1" json:"device_limit"`
	AccessFeatures datatypes.JSON `gorm:"column:access_features;type:jsonb" json:"access_features"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PlanModel) TableName() string { return "plans" }

func (m *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if len(m.AccessFeatures) == 0 {
		b, _ := json.Marshal(DefaultAccessFeatures())
		m.AccessFeatures = datatypes.JSON(b)
	}
	return nil
}

// DefaultAccessFeatures is the fixed feature map a new plan starts from.
func DefaultAccessFeatures() map[string]bool {
	return map[string]bool{
		"question_bank":   true,
		"explanations":    true,
		"audio_playback":  false,
		"progress_stats":  false,
		"offline_access":  false,
	}
}
