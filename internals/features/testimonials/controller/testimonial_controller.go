// file: internals/features/testimonials/controller/testimonial_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tsDTO "medlearn_backend/internals/features/testimonials/dto"
	tsModel "medlearn_backend/internals/features/testimonials/model"
	helper "medlearn_backend/internals/helpers"
)

type TestimonialsController struct {
	DB *gorm.DB
}

// POST /api/admin/testimonials
func (h *TestimonialsController) CreateTestimonial(c *fiber.Ctx) error {
	var req tsDTO.SaveTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create testimonial")
	}
	return helper.JsonCreated(c, "Testimonial created", tsDTO.FromTestimonialModel(m))
}

// GET /api/admin/testimonials (all) and /api/u/testimonials (published only)
func (h *TestimonialsController) ListTestimonials(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&tsModel.TestimonialModel{})
	if strings.HasPrefix(c.Path(), "/api/u/") {
		tx = tx.Where("is_published = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count testimonials")
	}

	var rows []tsModel.TestimonialModel
	if err := tx.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list testimonials")
	}

	return helper.JsonList(c, "", tsDTO.FromTestimonialModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/admin/testimonials/:id
func (h *TestimonialsController) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req tsDTO.SaveTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next := req.ToModel()
	res := h.DB.Model(&tsModel.TestimonialModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         next.Name,
			"title":        next.Title,
			"message":      next.Message,
			"rating":       next.Rating,
			"is_published": next.IsPublished,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update testimonial")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
	}

	var out tsModel.TestimonialModel
	if err := h.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload testimonial")
	}
	return helper.JsonUpdated(c, "Testimonial updated", tsDTO.FromTestimonialModel(out))
}

// DELETE /api/admin/testimonials/:id
func (h *TestimonialsController) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&tsModel.TestimonialModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete testimonial")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
	}
	return helper.JsonDeleted(c, "Testimonial deleted", fiber.Map{"id": id})
}
