// file: internals/features/doctors/doctor/controller/doctor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	doctorDTO "medlearn_backend/internals/features/doctors/doctor/dto"
	doctorModel "medlearn_backend/internals/features/doctors/doctor/model"
	helper "medlearn_backend/internals/helpers"
)

type DoctorsController struct {
	DB *gorm.DB
}

// POST /api/admin/doctors
func (h *DoctorsController) CreateDoctor(c *fiber.Ctx) error {
	var req doctorDTO.SaveDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create doctor")
	}
	return helper.JsonCreated(c, "Doctor created", doctorDTO.FromDoctorModel(m))
}

// GET /api/admin/doctors?q=
func (h *DoctorsController) ListDoctors(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&doctorModel.DoctorModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(specialization) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count doctors")
	}

	var rows []doctorModel.DoctorModel
	if err := tx.Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list doctors")
	}

	return helper.JsonList(c, "", doctorDTO.FromDoctorModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/doctors/:id
func (h *DoctorsController) GetDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m doctorModel.DoctorModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Doctor not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch doctor")
	}
	return helper.JsonOK(c, "", doctorDTO.FromDoctorModel(m))
}

// PUT /api/admin/doctors/:id
func (h *DoctorsController) UpdateDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req doctorDTO.SaveDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next := req.ToModel()
	res := h.DB.Model(&doctorModel.DoctorModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"user_id":        next.UserID,
			"name":           next.Name,
			"specialization": next.Specialization,
			"bio":            next.Bio,
			"email":          next.Email,
			"photo_url":      next.PhotoURL,
			"is_active":      next.IsActive,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update doctor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Doctor not found")
	}

	var out doctorModel.DoctorModel
	if err := h.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload doctor")
	}
	return helper.JsonUpdated(c, "Doctor updated", doctorDTO.FromDoctorModel(out))
}

// DELETE /api/admin/doctors/:id
func (h *DoctorsController) DeleteDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&doctorModel.DoctorModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete doctor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Doctor not found")
	}
	return helper.JsonDeleted(c, "Doctor deleted", fiber.Map{"id": id})
}
