// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "medlearn_backend/internals/features/users/user/model"
)

var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRx = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
)

/* =========================================================
   Requests
========================================================= */

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin doctor user"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin doctor user"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// ValidateContact enforces email and phone formats shared by create and edit.
func ValidateContact(email, phone string) string {
	if !emailRx.MatchString(email) {
		return "Invalid email format"
	}
	if phone != "" && !phoneRx.MatchString(phone) {
		return "Invalid phone format"
	}
	return ""
}

/* =========================================================
   Responses
========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUserModel(m userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromUserModels(arr []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromUserModel(m))
	}
	return out
}
