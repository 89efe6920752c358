// file: internals/features/billing/addons/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	addonController "medlearn_backend/internals/features/billing/addons/controller"
)

func AddonAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &addonController.AddonsController{DB: db}

	addons := r.Group("/addons")
	addons.Post("/", ctrl.CreateAddon)
	addons.Get("/", ctrl.ListAddons)
	addons.Put("/:id", ctrl.UpdateAddon)
	addons.Delete("/:id", ctrl.DeleteAddon)
}

func AddonPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &addonController.AddonsController{DB: db}
	r.Get("/addons", ctrl.ListAddons)
}
