// file: internals/features/content/chapters/route/admin_route.go
package route

import (
	chaptersController "medlearn_backend/internals/features/content/chapters/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ChapterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &chaptersController.ChaptersController{DB: db}
	chapters := r.Group("/chapters")
	chapters.Get("/", ctl.ListChapters)              // GET    /api/admin/chapters
	chapters.Post("/", ctl.CreateChapter)            // POST   /api/admin/chapters
	chapters.Get("/:id/topics", ctl.GetChapterTopics) // GET   /api/admin/chapters/:id/topics
	chapters.Put("/:id", ctl.UpdateChapter)          // PUT    /api/admin/chapters/:id
	chapters.Delete("/:id", ctl.DeleteChapter)       // DELETE /api/admin/chapters/:id
}
