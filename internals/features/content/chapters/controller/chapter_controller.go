// file: internals/features/content/chapters/controller/chapter_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterDTO "medlearn_backend/internals/features/content/chapters/dto"
	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
	helper "medlearn_backend/internals/helpers"
)

type ChaptersController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/admin/chapters
func (h *ChaptersController) CreateChapter(c *fiber.Ctx) error {
	var req chapterDTO.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// parent must exist (live)
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("id = ?", req.SubjectID).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "subject_id does not reference a subject")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create chapter")
		}
		c.Locals("created_chapter", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("created_chapter").(chapterModel.ChapterModel)
	return helper.JsonCreated(c, "Chapter created", chapterDTO.FromChapterModel(m))
}

// LIST
// GET /api/admin/chapters?subject_id=
func (h *ChaptersController) ListChapters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&chapterModel.ChapterModel{})
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject_id")
		}
		tx = tx.Where("subject_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count chapters")
	}

	var rows []chapterModel.ChapterModel
	if err := tx.
		Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list chapters")
	}

	return helper.JsonList(c, "", chapterDTO.FromChapterModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   CHAPTER-SCOPED VIEW
   GET /api/admin/chapters/:id/topics
   Detail page payload: the chapter itself, its topics and its
   direct questions (topic_id null).
========================================================= */
func (h *ChaptersController) GetChapterTopics(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var ch chapterModel.ChapterModel
	if err := h.DB.First(&ch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Chapter not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch chapter")
	}

	var topics []topicModel.TopicModel
	if err := h.DB.Where("chapter_id = ?", id).
		Order("created_at ASC").Find(&topics).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topics")
	}

	var direct []questionModel.QuestionModel
	if err := h.DB.Preload("Options").
		Where("chapter_id = ? AND topic_id IS NULL", id).
		Order("created_at ASC").Find(&direct).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	questions := make([]fiber.Map, 0, len(direct))
	for _, q := range direct {
		questions = append(questions, questionToMap(q))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"chapter":   chapterDTO.FromChapterModel(ch),
		"topics":    chapterTopicsPayload(topics),
		"questions": questions,
	})
}

// UPDATE (full-object PUT)
// PUT /api/admin/chapters/:id
func (h *ChaptersController) UpdateChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req chapterDTO.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m chapterModel.ChapterModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch chapter")
		}

		req.Apply(&m)
		if err := tx.Model(&chapterModel.ChapterModel{}).
			Where("id = ?", m.ID).
			Updates(map[string]interface{}{
				"name":        m.Name,
				"description": m.Description,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update chapter")
		}

		c.Locals("updated_chapter", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_chapter").(chapterModel.ChapterModel)
	return helper.JsonUpdated(c, "Chapter updated", chapterDTO.FromChapterModel(m))
}

// DELETE (cascades to topics/questions/options)
// DELETE /api/admin/chapters/:id
func (h *ChaptersController) DeleteChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m chapterModel.ChapterModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch chapter")
		}

		if err := CascadeDeleteChapter(tx, id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete chapter")
		}

		c.Locals("deleted_chapter", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_chapter").(chapterModel.ChapterModel)
	return helper.JsonDeleted(c, "Chapter deleted", chapterDTO.FromChapterModel(m))
}

// CascadeDeleteChapter removes a chapter and its topics, questions and
// options within the caller's transaction.
func CascadeDeleteChapter(tx *gorm.DB, chapterID uuid.UUID) error {
	if err := tx.
		Where("question_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&questionModel.QuestionModel{}).
				Select("id").Where("chapter_id = ?", chapterID),
		).
		Delete(&questionModel.QuestionOptionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("chapter_id = ?", chapterID).
		Delete(&questionModel.QuestionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("chapter_id = ?", chapterID).
		Delete(&topicModel.TopicModel{}).Error; err != nil {
		return err
	}
	return tx.Delete(&chapterModel.ChapterModel{}, "id = ?", chapterID).Error
}

func chapterTopicsPayload(topics []topicModel.TopicModel) []fiber.Map {
	out := make([]fiber.Map, 0, len(topics))
	for _, t := range topics {
		out = append(out, fiber.Map{
			"id":          t.ID,
			"chapter_id":  t.ChapterID,
			"name":        t.Name,
			"description": t.Description,
		})
	}
	return out
}

func questionToMap(q questionModel.QuestionModel) fiber.Map {
	opts := make([]fiber.Map, 0, len(q.Options))
	for _, op := range q.Options {
		opts = append(opts, fiber.Map{"option_key": op.OptionKey, "content": op.Content})
	}
	return fiber.Map{
		"id":               q.ID,
		"subject_id":       q.SubjectID,
		"chapter_id":       q.ChapterID,
		"topic_id":         q.TopicID,
		"question_text":    q.QuestionText,
		"status":           q.Status,
		"correct_key":      q.CorrectKey,
		"question_options": opts,
	}
}
