// file: internals/features/media/voice/controller/explanation_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionModel "medlearn_backend/internals/features/content/questions/model"
	speechService "medlearn_backend/internals/features/media/voice/service"
	helper "medlearn_backend/internals/helpers"
)

// ExplanationController generates and clears the written explanation that
// backs the TTS audio of a question.
type ExplanationController struct {
	DB     *gorm.DB
	Speech *speechService.SpeechClient
}

type generateExplanationRequest struct {
	Regenerate bool `json:"regenerate"`
}

// POST /api/doctor/questions/:id/explanation
func (h *ExplanationController) GenerateExplanation(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req generateExplanationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	var q questionModel.QuestionModel
	if err := h.DB.Preload("Options").First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}

	// Without regenerate an existing explanation is returned as-is.
	if !req.Regenerate && q.Explanation != nil && strings.TrimSpace(*q.Explanation) != "" {
		return helper.JsonOK(c, "", fiber.Map{"text": *q.Explanation})
	}

	opts := make([]string, 0, len(q.Options))
	for _, op := range q.Options {
		opts = append(opts, fmt.Sprintf("%s. %s", op.OptionKey, op.Content))
	}
	correct := ""
	if q.CorrectKey != nil {
		correct = *q.CorrectKey
	}

	text, err := h.Speech.GenerateExplanation(c.Context(), q.QuestionText, opts, correct)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to generate explanation")
	}

	if err := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update("explanation", text).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store explanation")
	}

	return helper.JsonOK(c, "Explanation generated", fiber.Map{"text": text})
}

// DELETE /api/doctor/questions/:id/explanation
func (h *ExplanationController) DeleteExplanation(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", id).
		Update("explanation", nil)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear explanation")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c, "Explanation cleared", fiber.Map{"id": id})
}
