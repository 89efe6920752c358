// file: internals/route/details/content_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chapterRoute "medlearn_backend/internals/features/content/chapters/route"
	questionRoute "medlearn_backend/internals/features/content/questions/route"
	subjectRoute "medlearn_backend/internals/features/content/subjects/route"
	topicRoute "medlearn_backend/internals/features/content/topics/route"
)

// ContentAdminRoutes mounts the subject→chapter→topic→question hierarchy.
func ContentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	subjectRoute.SubjectAdminRoutes(admin, db)
	chapterRoute.ChapterAdminRoutes(admin, db)
	topicRoute.TopicAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
}
