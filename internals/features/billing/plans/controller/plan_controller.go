// file: internals/features/billing/plans/controller/plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	planDTO "medlearn_backend/internals/features/billing/plans/dto"
	planModel "medlearn_backend/internals/features/billing/plans/model"
	helper "medlearn_backend/internals/helpers"
)

type PlansController struct {
	DB *gorm.DB
}

// POST /api/admin/plans
func (h *PlansController) CreatePlan(c *fiber.Ctx) error {
	var req planDTO.SavePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create plan")
	}

	return helper.JsonCreated(c, "Plan created", planDTO.FromPlanModel(m))
}

// GET /api/admin/plans (admin) and /api/u/plans (public, active only)
func (h *PlansController) ListPlans(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&planModel.PlanModel{})
	if strings.HasPrefix(c.Path(), "/api/u/") {
		tx = tx.Where("is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count plans")
	}

	var rows []planModel.PlanModel
	if err := tx.Order("price ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list plans")
	}

	return helper.JsonList(c, "", planDTO.FromPlanModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/admin/plans/:id
func (h *PlansController) UpdatePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req planDTO.SavePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m planModel.PlanModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Plan not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch plan")
		}

		if err := tx.Model(&planModel.PlanModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":            next.Name,
				"description":     next.Description,
				"price":           next.Price,
				"duration_days":   next.DurationDays,
				"device_limit":    next.DeviceLimit,
				"access_features": next.AccessFeatures,
				"is_active":       next.IsActive,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update plan")
		}
		return nil
	}); err != nil {
		return err
	}

	var out planModel.PlanModel
	if err := h.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload plan")
	}
	return helper.JsonUpdated(c, "Plan updated", planDTO.FromPlanModel(out))
}

// DELETE /api/admin/plans/:id
func (h *PlansController) DeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&planModel.PlanModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete plan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Plan not found")
	}

	return helper.JsonDeleted(c, "Plan deleted", fiber.Map{"id": id})
}
