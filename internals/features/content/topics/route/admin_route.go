// file: internals/features/content/topics/route/admin_route.go
package route

import (
	topicsController "medlearn_backend/internals/features/content/topics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TopicAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &topicsController.TopicsController{DB: db}
	topics := r.Group("/topics")
	topics.Get("/", ctl.ListTopics)        // GET    /api/admin/topics
	topics.Post("/", ctl.CreateTopic)      // POST   /api/admin/topics
	topics.Put("/:id", ctl.UpdateTopic)    // PUT    /api/admin/topics/:id
	topics.Delete("/:id", ctl.DeleteTopic) // DELETE /api/admin/topics/:id
}
