// file: internals/features/billing/addons/controller/addon_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	addonDTO "medlearn_backend/internals/features/billing/addons/dto"
	addonModel "medlearn_backend/internals/features/billing/addons/model"
	helper "medlearn_backend/internals/helpers"
)

type AddonsController struct {
	DB *gorm.DB
}

// POST /api/admin/addons
func (h *AddonsController) CreateAddon(c *fiber.Ctx) error {
	var req addonDTO.SaveAddonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create addon")
	}
	return helper.JsonCreated(c, "Addon created", addonDTO.FromAddonModel(m))
}

// GET /api/admin/addons (admin) and /api/u/addons (public, active only)
func (h *AddonsController) ListAddons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&addonModel.AddonModel{})
	if strings.HasPrefix(c.Path(), "/api/u/") {
		tx = tx.Where("is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count addons")
	}

	var rows []addonModel.AddonModel
	if err := tx.Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list addons")
	}

	return helper.JsonList(c, "", addonDTO.FromAddonModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/admin/addons/:id
func (h *AddonsController) UpdateAddon(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req addonDTO.SaveAddonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next := req.ToModel()
	res := h.DB.Model(&addonModel.AddonModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        next.Name,
			"description": next.Description,
			"price":       next.Price,
			"feature_key": next.FeatureKey,
			"is_active":   next.IsActive,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update addon")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Addon not found")
	}

	var out addonModel.AddonModel
	if err := h.DB.First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload addon")
	}
	return helper.JsonUpdated(c, "Addon updated", addonDTO.FromAddonModel(out))
}

// DELETE /api/admin/addons/:id
func (h *AddonsController) DeleteAddon(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&addonModel.AddonModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete addon")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Addon not found")
	}
	return helper.JsonDeleted(c, "Addon deleted", fiber.Map{"id": id})
}
