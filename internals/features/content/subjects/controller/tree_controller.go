// file: internals/features/content/subjects/controller/tree_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	subjectDTO "medlearn_backend/internals/features/content/subjects/dto"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
)

/* =========================================================
   TREE
   GET /api/admin/subjects/tree
   Returns the entire hierarchy in one response. The dashboard
   treats this as its single source of truth and refetches it
   wholesale after every mutation, so this endpoint must only
   ever expose live (non-deleted) rows.
========================================================= */
func (h *SubjectsController) GetTree(c *fiber.Ctx) error {
	var subjects []subjectModel.SubjectModel
	if err := h.DB.Order("created_at ASC").Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	var chapters []chapterModel.ChapterModel
	if err := h.DB.Order("created_at ASC").Find(&chapters).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch chapters")
	}

	var topics []topicModel.TopicModel
	if err := h.DB.Order("created_at ASC").Find(&topics).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topics")
	}

	var questions []questionModel.QuestionModel
	if err := h.DB.
		Preload("Options").
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	tree := subjectDTO.BuildTree(subjects, chapters, topics, questions)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"tree":    tree,
	})
}
