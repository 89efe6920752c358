// file: internals/features/billing/subscriptions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subsController "medlearn_backend/internals/features/billing/subscriptions/controller"
)

// SubscriptionUserRoutes registers checkout endpoints for authenticated users.
func SubscriptionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &subsController.SubscriptionsController{DB: db}

	subs := r.Group("/subscriptions")
	subs.Post("/checkout", ctrl.Checkout)
	subs.Get("/", ctrl.ListMySubscriptions)
}
