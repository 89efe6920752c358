// file: internals/features/doctors/doctor/dto/doctor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	doctorModel "medlearn_backend/internals/features/doctors/doctor/model"
)

/* =========================================================
   Requests
========================================================= */

type SaveDoctorRequest struct {
	UserID         *uuid.UUID `json:"user_id" validate:"omitempty"`
	Name           string     `json:"name" validate:"required,min=2,max=100"`
	Specialization string     `json:"specialization" validate:"omitempty,max=120"`
	Bio            string     `json:"bio" validate:"omitempty"`
	Email          string     `json:"email" validate:"omitempty,email"`
	PhotoURL       string     `json:"photo_url" validate:"omitempty,url"`
	IsActive       *bool      `json:"is_active" validate:"omitempty"`
}

func (r *SaveDoctorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Specialization = strings.TrimSpace(r.Specialization)
	r.Bio = strings.TrimSpace(r.Bio)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
}

func (r *SaveDoctorRequest) ToModel() doctorModel.DoctorModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return doctorModel.DoctorModel{
		UserID:         r.UserID,
		Name:           r.Name,
		Specialization: r.Specialization,
		Bio:            r.Bio,
		Email:          r.Email,
		PhotoURL:       r.PhotoURL,
		IsActive:       active,
	}
}

/* =========================================================
   Responses
========================================================= */

type DoctorResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Name           string     `json:"name"`
	Specialization string     `json:"specialization"`
	Bio            string     `json:"bio"`
	Email          string     `json:"email"`
	PhotoURL       string     `json:"photo_url"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromDoctorModel(m doctorModel.DoctorModel) DoctorResponse {
	return DoctorResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Specialization: m.Specialization,
		Bio:            m.Bio,
		Email:          m.Email,
		PhotoURL:       m.PhotoURL,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromDoctorModels(arr []doctorModel.DoctorModel) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromDoctorModel(m))
	}
	return out
}
