// file: internals/features/content/questions/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionDTO "medlearn_backend/internals/features/content/questions/dto"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
	helper "medlearn_backend/internals/helpers"
)

type QuestionsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/admin/questions
func (h *QuestionsController) CreateQuestion(c *fiber.Ctx) error {
	var req questionDTO.SaveQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.checkParents(tx, m); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create question")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Question created", questionDTO.FromQuestionModel(*m))
}

// UPDATE (full-object PUT; options replaced wholesale, status reset to pending)
// PUT /api/admin/questions/:id
func (h *QuestionsController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req questionDTO.SaveQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	next, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing questionModel.QuestionModel
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Question not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
		}

		if err := h.checkParents(tx, next); err != nil {
			return err
		}

		// Every edit goes back through review. Only the status endpoint can
		// approve or reject.
		patch := map[string]interface{}{
			"subject_id":    next.SubjectID,
			"chapter_id":    next.ChapterID,
			"topic_id":      next.TopicID,
			"question_text": next.QuestionText,
			"explanation":   next.Explanation,
			"image_url":     next.ImageURL,
			"correct_key":   next.CorrectKey,
			"status":        questionModel.QuestionStatusPending,
		}
		if err := tx.Model(&questionModel.QuestionModel{}).
			Where("id = ?", id).Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update question")
		}

		// replace options wholesale
		if err := tx.Where("question_id = ?", id).
			Delete(&questionModel.QuestionOptionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to replace options")
		}
		for i := range next.Options {
			next.Options[i].ID = uuid.Nil
			next.Options[i].QuestionID = id
		}
		if err := tx.Create(&next.Options).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to replace options")
		}
		return nil
	}); err != nil {
		return err
	}

	var out questionModel.QuestionModel
	if err := h.DB.Preload("Options").First(&out, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reload question")
	}
	return helper.JsonUpdated(c, "Question updated", questionDTO.FromQuestionModel(out))
}

// GET /api/admin/questions/:id
func (h *QuestionsController) GetQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m questionModel.QuestionModel
	if err := h.DB.Preload("Options").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
	}

	return helper.JsonOK(c, "Question found", questionDTO.FromQuestionModel(m))
}

// LIST
// GET /api/admin/questions?subject_id=&chapter_id=&topic_id=&status=&q=
func (h *QuestionsController) ListQuestions(c *fiber.Ctx) error {
	var q questionDTO.ListQuestionsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validator.New().Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&questionModel.QuestionModel{})
	if q.SubjectID != nil {
		tx = tx.Where("subject_id = ?", *q.SubjectID)
	}
	if q.ChapterID != nil {
		tx = tx.Where("chapter_id = ?", *q.ChapterID)
	}
	if q.TopicID != nil {
		tx = tx.Where("topic_id = ?", *q.TopicID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", strings.ToLower(q.Status))
	}
	if kw := strings.TrimSpace(q.Q); kw != "" {
		tx = tx.Where("LOWER(question_text) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count questions")
	}

	var rows []questionModel.QuestionModel
	if err := tx.Preload("Options").
		Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list questions")
	}

	return helper.JsonList(c, "", questionDTO.FromQuestionModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE
// DELETE /api/admin/questions/:id
func (h *QuestionsController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m questionModel.QuestionModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Question not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch question")
		}

		if err := tx.Where("question_id = ?", id).
			Delete(&questionModel.QuestionOptionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete options")
		}
		if err := tx.Delete(&questionModel.QuestionModel{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
		}

		c.Locals("deleted_question", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_question").(questionModel.QuestionModel)
	return helper.JsonDeleted(c, "Question deleted", questionDTO.FromQuestionModel(m))
}

// checkParents enforces the referential shape inside the write transaction:
// subject and chapter must exist, the chapter must belong to the subject, and
// a topic (when set) must belong to that same chapter.
func (h *QuestionsController) checkParents(tx *gorm.DB, m *questionModel.QuestionModel) error {
	var cnt int64
	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("id = ?", m.SubjectID).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id does not reference a subject")
	}

	var ch chapterModel.ChapterModel
	if err := tx.First(&ch, "id = ?", m.ChapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "chapter_id does not reference a chapter")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check chapter")
	}
	if ch.SubjectID != m.SubjectID {
		return fiber.NewError(fiber.StatusBadRequest, "chapter does not belong to the given subject")
	}

	if m.TopicID != nil {
		var t topicModel.TopicModel
		if err := tx.First(&t, "id = ?", *m.TopicID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "topic_id does not reference a topic")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check topic")
		}
		if t.ChapterID != m.ChapterID {
			return fiber.NewError(fiber.StatusBadRequest, "topic does not belong to the given chapter")
		}
	}
	return nil
}
