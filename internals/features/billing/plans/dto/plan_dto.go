// file: internals/features/billing/plans/dto/plan_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	planModel "medlearn_backend/internals/features/billing/plans/model"
)

type SavePlanRequest struct {
	Name           string          `json:"name" validate:"required,max=120"`
	Description    *string         `json:"description" validate:"omitempty"`
	Price          float64         `json:"price" validate:"gte=0"`
	DurationDays   int             `json:"duration_days" validate:"required,gt=0"`
	DeviceLimit    int             `json:"device_limit" validate:"required,gt=0"`
	AccessFeatures map[string]bool `json:"access_features" validate:"omitempty"`
	IsActive       *bool           `json:"is_active" validate:"omitempty"`
}

func (r *SavePlanRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *SavePlanRequest) ToModel() planModel.PlanModel {
	features := r.AccessFeatures
	if features == nil {
		features = planModel.DefaultAccessFeatures()
	}
	b, _ := json.Marshal(features)

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return planModel.PlanModel{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		DurationDays:   r.DurationDays,
		DeviceLimit:    r.DeviceLimit,
		AccessFeatures: datatypes.JSON(b),
		IsActive:       active,
	}
}

type PlanResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	Price          float64         `json:"price"`
	DurationDays   int             `json:"duration_days"`
	DeviceLimit    int             `json:"device_limit"`
	AccessFeatures json.RawMessage `json:"access_features"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromPlanModel(m planModel.PlanModel) PlanResponse {
	return PlanResponse{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Price:          m.Price,
		DurationDays:   m.DurationDays,
		DeviceLimit:    m.DeviceLimit,
		AccessFeatures: json.RawMessage(m.AccessFeatures),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromPlanModels(arr []planModel.PlanModel) []PlanResponse {
	out := make([]PlanResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromPlanModel(m))
	}
	return out
}
