// file: internals/features/media/voice/route/doctor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voiceController "medlearn_backend/internals/features/media/voice/controller"
	speechService "medlearn_backend/internals/features/media/voice/service"
)

// VoiceDoctorRoutes mounts the explanation/audio lifecycle under the doctor
// group. One SpeechClient is shared by both controllers.
func VoiceDoctorRoutes(r fiber.Router, db *gorm.DB) {
	speech := speechService.FromEnv()

	expl := &voiceController.ExplanationController{DB: db, Speech: speech}
	voice := &voiceController.VoiceController{DB: db, Speech: speech}

	questions := r.Group("/questions")
	questions.Post("/:id/explanation", expl.GenerateExplanation)
	questions.Delete("/:id/explanation", expl.DeleteExplanation)
	questions.Post("/:id/voice", voice.GenerateVoice)
	questions.Delete("/:id/voice", voice.DeleteVoice)
}
