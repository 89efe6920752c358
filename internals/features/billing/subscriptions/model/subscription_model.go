// file: internals/features/billing/subscriptions/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubscriptionStatusPending = "pending"
	SubscriptionStatusPaid    = "paid"
	SubscriptionStatusExpired = "expired"
	SubscriptionStatusCancel  = "canceled"
)

type SubscriptionModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`

	// Order id sent to the payment gateway, unique per checkout attempt.
	OrderID string  `gorm:"type:varchar(64);not null;unique" json:"order_id"`
	Amount  float64 `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status  string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	PaymentToken string     `gorm:"type:varchar(255)" json:"payment_token,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (m *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
