// file: internals/features/testimonials/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tsController "medlearn_backend/internals/features/testimonials/controller"
)

func TestimonialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &tsController.TestimonialsController{DB: db}

	ts := r.Group("/testimonials")
	ts.Post("/", ctrl.CreateTestimonial)
	ts.Get("/", ctrl.ListTestimonials)
	ts.Put("/:id", ctrl.UpdateTestimonial)
	ts.Delete("/:id", ctrl.DeleteTestimonial)
}

func TestimonialPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &tsController.TestimonialsController{DB: db}
	r.Get("/testimonials", ctrl.ListTestimonials)
}
