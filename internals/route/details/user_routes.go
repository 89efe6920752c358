// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	doctorRoute "medlearn_backend/internals/features/doctors/doctor/route"
	userRoute "medlearn_backend/internals/features/users/user/route"
)

func AccountAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
	doctorRoute.DoctorAdminRoutes(admin, db)
}
