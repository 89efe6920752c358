// file: internals/features/content/questions/route/admin_route.go
package route

import (
	questionsController "medlearn_backend/internals/features/content/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuestionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &questionsController.QuestionsController{DB: db}
	questions := r.Group("/questions")
	questions.Get("/", ctl.ListQuestions)                  // GET    /api/admin/questions
	questions.Post("/", ctl.CreateQuestion)                // POST   /api/admin/questions
	questions.Get("/:id", ctl.GetQuestion)                 // GET    /api/admin/questions/:id
	questions.Put("/:id/status", ctl.UpdateQuestionStatus) // PUT    /api/admin/questions/:id/status
	questions.Post("/:id/image", ctl.UploadQuestionImage)  // POST   /api/admin/questions/:id/image
	questions.Put("/:id", ctl.UpdateQuestion)              // PUT    /api/admin/questions/:id
	questions.Delete("/:id", ctl.DeleteQuestion)           // DELETE /api/admin/questions/:id
}
