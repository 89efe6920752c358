// file: internals/features/billing/subscriptions/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	subsModel "medlearn_backend/internals/features/billing/subscriptions/model"
)

type CheckoutRequest struct {
	PlanID uuid.UUID `json:"plan_id" validate:"required"`
}

type CheckoutResponse struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	OrderID        string    `json:"order_id"`
	Amount         float64   `json:"amount"`
	PaymentToken   string    `json:"payment_token"`
}

type SubscriptionResponse struct {
	ID        uuid.UUID  `json:"id"`
	PlanID    uuid.UUID  `json:"plan_id"`
	OrderID   string     `json:"order_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromSubscriptionModel(m subsModel.SubscriptionModel) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        m.ID,
		PlanID:    m.PlanID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Status:    m.Status,
		PaidAt:    m.PaidAt,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func FromSubscriptionModels(arr []subsModel.SubscriptionModel) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromSubscriptionModel(m))
	}
	return out
}
