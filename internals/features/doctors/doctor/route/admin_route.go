// file: internals/features/doctors/doctor/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	doctorController "medlearn_backend/internals/features/doctors/doctor/controller"
)

func DoctorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &doctorController.DoctorsController{DB: db}

	doctors := r.Group("/doctors")
	doctors.Post("/", ctrl.CreateDoctor)
	doctors.Get("/", ctrl.ListDoctors)
	doctors.Get("/:id", ctrl.GetDoctor)
	doctors.Put("/:id", ctrl.UpdateDoctor)
	doctors.Delete("/:id", ctrl.DeleteDoctor)
}
