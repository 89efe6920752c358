// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	addonRoute "medlearn_backend/internals/features/billing/addons/route"
	planRoute "medlearn_backend/internals/features/billing/plans/route"
	subsRoute "medlearn_backend/internals/features/billing/subscriptions/route"
	tsRoute "medlearn_backend/internals/features/testimonials/route"
)

func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	planRoute.PlanAdminRoutes(admin, db)
	addonRoute.AddonAdminRoutes(admin, db)
	tsRoute.TestimonialAdminRoutes(admin, db)
}

// BillingPublicRoutes exposes the marketing-facing catalog listings.
func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	planRoute.PlanPublicRoutes(public, db)
	addonRoute.AddonPublicRoutes(public, db)
	tsRoute.TestimonialPublicRoutes(public, db)
}

func BillingUserRoutes(private fiber.Router, db *gorm.DB) {
	subsRoute.SubscriptionUserRoutes(private, db)
}
