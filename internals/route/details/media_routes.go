// file: internals/route/details/media_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	voiceRoute "medlearn_backend/internals/features/media/voice/route"
)

func MediaDoctorRoutes(doctor fiber.Router, db *gorm.DB) {
	voiceRoute.VoiceDoctorRoutes(doctor, db)
}
