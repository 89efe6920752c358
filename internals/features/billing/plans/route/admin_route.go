// file: internals/features/billing/plans/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "medlearn_backend/internals/features/billing/plans/controller"
)

// PlanAdminRoutes registers plan management endpoints under the admin group.
func PlanAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &planController.PlansController{DB: db}

	plans := r.Group("/plans")
	plans.Post("/", ctrl.CreatePlan)
	plans.Get("/", ctrl.ListPlans)
	plans.Put("/:id", ctrl.UpdatePlan)
	plans.Delete("/:id", ctrl.DeletePlan)
}

// PlanPublicRoutes exposes the active plan catalog to app users.
func PlanPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &planController.PlansController{DB: db}
	r.Get("/plans", ctrl.ListPlans)
}
