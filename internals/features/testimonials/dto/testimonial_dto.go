// file: internals/features/testimonials/dto/testimonial_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	tsModel "medlearn_backend/internals/features/testimonials/model"
)

/* =========================================================
   Requests
========================================================= */

type SaveTestimonialRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Title       string `json:"title" validate:"omitempty,max=120"`
	Message     string `json:"message" validate:"required,min=10"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsPublished *bool  `json:"is_published" validate:"omitempty"`
}

func (r *SaveTestimonialRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *SaveTestimonialRequest) ToModel() tsModel.TestimonialModel {
	rating := r.Rating
	if rating == 0 {
		rating = 5
	}
	published := false
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return tsModel.TestimonialModel{
		Name:        r.Name,
		Title:       r.Title,
		Message:     r.Message,
		Rating:      rating,
		IsPublished: published,
	}
}

/* =========================================================
   Responses
========================================================= */

type TestimonialResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Rating      int       `json:"rating"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTestimonialModel(m tsModel.TestimonialModel) TestimonialResponse {
	return TestimonialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Title:       m.Title,
		Message:     m.Message,
		Rating:      m.Rating,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromTestimonialModels(arr []tsModel.TestimonialModel) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(arr))
	for _, m := range arr {
		out = append(out, FromTestimonialModel(m))
	}
	return out
}
