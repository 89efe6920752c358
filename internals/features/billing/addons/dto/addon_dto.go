// file: internals/features/billing/addons/dto/addon_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	addonModel "medlearn_backend/internals/features/billing/addons/model"
)

/* =========================================================
   Requests
========================================================= */

type SaveAddonRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	FeatureKey  string  `json:"feature_key" validate:"required,min=2,max=60"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

func (r *SaveAddonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.FeatureKey = strings.ToLower(strings.TrimSpace(r.FeatureKey))
}

func (r *SaveAddonRequest) ToModel() addonModel.AddonModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return addonModel.AddonModel{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		FeatureKey:  r.FeatureKey,
		IsActive:    active,
	}
}

/* =========================================================
   Responses
========================================================= */

type AddonResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	FeatureKey  string    `json:"feature_key"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromAddonModel(m addonModel.AddonModel) AddonResponse {
	return AddonResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		FeatureKey:  m.FeatureKey,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromAddonModels(arr []addonModel.AddonModel) []AddonResponse {
	out := make([]AddonResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromAddonModel(m))
	}
	return out
}
