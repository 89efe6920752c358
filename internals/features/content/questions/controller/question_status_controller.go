// file: internals/features/content/questions/controller/question_status_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionDTO "medlearn_backend/internals/features/content/questions/dto"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	helper "medlearn_backend/internals/helpers"
	"medlearn_backend/internals/helpers/oss"
)

/* =========================================================
   STATUS
   PUT /api/admin/questions/:id/status
   The only path that can move a question out of "pending".
========================================================= */
func (h *QuestionsController) UpdateQuestionStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req questionDTO.UpdateQuestionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonUpdated(c, "Status updated", fiber.Map{
		"id":     id,
		"status": req.Status,
	})
}

/* =========================================================
   IMAGE UPLOAD
   POST /api/admin/questions/:id/image (multipart "image")
   Converts to webp, stores in OSS, patches image_url.
========================================================= */
func (h *QuestionsController) UploadQuestionImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m questionModel.QuestionModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	data, err := helper.ConvertMultipartToWebP(fh)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	store, err := oss.FromEnv()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Object storage is not configured")
	}
	url, err := store.UploadBytes("questions/images", "webp", "image/webp", data)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	if err := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update("image_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image url")
	}

	return helper.JsonUpdated(c, "Image uploaded", fiber.Map{
		"id":        id,
		"image_url": url,
	})
}
