// file: internals/features/content/subjects/controller/subject_controller.go
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
	subjectDTO "medlearn_backend/internals/features/content/subjects/dto"
	subjectModel "medlearn_backend/internals/features/content/subjects/model"
	topicModel "medlearn_backend/internals/features/content/topics/model"
	helper "medlearn_backend/internals/helpers"
)

type SubjectsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/admin/subjects
func (h *SubjectsController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.JsonCreated(c, "Subject created", subjectDTO.FromSubjectModel(m))
}

/* =========================================================
   LIST
   GET /api/admin/subjects?q=&page=&per_page=
========================================================= */
func (h *SubjectsController) ListSubjects(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.Model(&subjectModel.SubjectModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := tx.
		Order("created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subjects")
	}

	return helper.JsonList(c, "", subjectDTO.FromSubjectModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/subjects/:id
func (h *SubjectsController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	return helper.JsonOK(c, "Subject found", subjectDTO.FromSubjectModel(m))
}

// UPDATE (full-object PUT)
// PUT /api/admin/subjects/:id
func (h *SubjectsController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m subjectModel.SubjectModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		req.Apply(&m)
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("id = ?", m.ID).
			Updates(map[string]interface{}{
				"name":        m.Name,
				"description": m.Description,
			}).Error; err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject name already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
		}

		c.Locals("updated_subject", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_subject").(subjectModel.SubjectModel)
	return helper.JsonUpdated(c, "Subject updated", subjectDTO.FromSubjectModel(m))
}

/* =========================================================
   DELETE (cascades)
   DELETE /api/admin/subjects/:id
   Soft-deletes the subject and every chapter/topic/question/
   option underneath it in one transaction, so the next full
   tree fetch can never return an orphan.
========================================================= */
func (h *SubjectsController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m subjectModel.SubjectModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		if err := CascadeDeleteSubject(tx, id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
		}

		c.Locals("deleted_subject", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_subject").(subjectModel.SubjectModel)
	return helper.JsonDeleted(c, "Subject deleted", subjectDTO.FromSubjectModel(m))
}

// CascadeDeleteSubject removes a subject and all of its descendants within the
// caller's transaction.
func CascadeDeleteSubject(tx *gorm.DB, subjectID uuid.UUID) error {
	// options are hard rows (no soft delete); remove by question set
	if err := tx.
		Where("question_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&questionModel.QuestionModel{}).
				Select("id").Where("subject_id = ?", subjectID),
		).
		Delete(&questionModel.QuestionOptionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("subject_id = ?", subjectID).
		Delete(&questionModel.QuestionModel{}).Error; err != nil {
		return err
	}
	if err := tx.
		Where("chapter_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).
				Model(&chapterModel.ChapterModel{}).
				Select("id").Where("subject_id = ?", subjectID),
		).
		Delete(&topicModel.TopicModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("subject_id = ?", subjectID).
		Delete(&chapterModel.ChapterModel{}).Error; err != nil {
		return err
	}
	return tx.Delete(&subjectModel.SubjectModel{}, "id = ?", subjectID).Error
}

func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
