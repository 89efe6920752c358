// file: internals/features/content/topics/controller/topic_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chapterModel "medlearn_backend/internals/features/content/chapters/model"
	questionModel "medlearn_backend/internals/features/content/questions/model"
	topicDTO "medlearn_backend/internals/features/content/topics/dto"
	topicModel "medlearn_backend/internals/features/content/topics/model"
	helper "medlearn_backend/internals/helpers"
)

type TopicsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/admin/topics
func (h *TopicsController) CreateTopic(c *fiber.Ctx) error {
	var req topicDTO.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&chapterModel.ChapterModel{}).
			Where("id = ?", req.ChapterID).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check chapter")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "chapter_id does not reference a chapter")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create topic")
		}
		c.Locals("created_topic", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("created_topic").(topicModel.TopicModel)
	return helper.JsonCreated(c, "Topic created", topicDTO.FromTopicModel(m))
}

// LIST
// GET /api/admin/topics?chapter_id=
func (h *TopicsController) ListTopics(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&topicModel.TopicModel{})
	if cid := strings.TrimSpace(c.Query("chapter_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid chapter_id")
		}
		tx = tx.Where("chapter_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count topics")
	}

	var rows []topicModel.TopicModel
	if err := tx.
		Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list topics")
	}

	return helper.JsonList(c, "", topicDTO.FromTopicModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// UPDATE (full-object PUT)
// PUT /api/admin/topics/:id
func (h *TopicsController) UpdateTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req topicDTO.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m topicModel.TopicModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Topic not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topic")
		}

		req.Apply(&m)
		if err := tx.Model(&topicModel.TopicModel{}).
			Where("id = ?", m.ID).
			Updates(map[string]interface{}{
				"name":        m.Name,
				"description": m.Description,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update topic")
		}

		c.Locals("updated_topic", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_topic").(topicModel.TopicModel)
	return helper.JsonUpdated(c, "Topic updated", topicDTO.FromTopicModel(m))
}

// DELETE (cascades to questions/options)
// DELETE /api/admin/topics/:id
func (h *TopicsController) DeleteTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m topicModel.TopicModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Topic not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topic")
		}

		if err := CascadeDeleteTopic(tx, id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete topic")
		}

		c.Locals("deleted_topic", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_topic").(topicModel.TopicModel)
	return helper.JsonDeleted(c, "Topic deleted", topicDTO.FromTopicModel(m))
}

// CascadeDeleteTopic removes a topic and its questions/options within the
// caller's transaction.
func CascadeDeleteTopic(tx *gorm.DB, topicID uuid.UUID) error {
	if err := tx.
		Where("question_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&questionModel.QuestionModel{}).
				Select("id").Where("topic_id = ?", topicID),
		).
		Delete(&questionModel.QuestionOptionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("topic_id = ?", topicID).
		Delete(&questionModel.QuestionModel{}).Error; err != nil {
		return err
	}
	return tx.Delete(&topicModel.TopicModel{}, "id = ?", topicID).Error
}
